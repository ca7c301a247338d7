package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Config holds the demo binary's knobs, loadable from environment variables
// (CHECKOUT_ prefix), flags, or YAML config files. The checkout computation
// itself is not configurable; these only shape the illustrative scenario and
// its output.
type Config struct {
	CustomerName    string `default:"John Doe" usage:"Customer name for the demo scenario" flag:"customer-name"`
	CustomerBalance string `default:"1000" usage:"Customer starting cash balance" flag:"customer-balance"`
	JSONReceipt     bool   `default:"false" usage:"Print the receipt as JSON instead of text" flag:"json-receipt"`
}

// LoadConfig loads configuration from environment variables, flags, and YAML
// config files, and validates the balance amount.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CHECKOUT",
		Files:     []string{"config.yaml", "/etc/retail-checkout/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if _, err := decimal.NewFromString(cfg.CustomerBalance); err != nil {
		return nil, errors.Wrap(err, "parse customer balance")
	}

	return &cfg, nil
}
