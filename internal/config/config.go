package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. Defaults reproduce the historical
// behavior of the system; an optional centrostock.yaml in the working
// directory overrides them.
type Config struct {
	// DataDir is the directory holding every persisted file.
	DataDir string `mapstructure:"data_dir"`

	// Backing file names, relative to DataDir.
	ProductosFile string `mapstructure:"productos_file"`
	StockFile     string `mapstructure:"stock_file"`
	VentasFile    string `mapstructure:"ventas_file"`
	HistorialFile string `mapstructure:"historial_file"`

	// PageSize is the number of rows per page in paginated listings.
	PageSize int `mapstructure:"page_size"`

	// TicketPDF enables writing a PDF receipt for each registered sale.
	TicketPDF    bool   `mapstructure:"ticket_pdf"`
	TicketPDFDir string `mapstructure:"ticket_pdf_dir"`
}

// Load reads configuration from an optional centrostock.yaml file.
// A missing file is not an error: defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("centrostock")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("data_dir", ".")
	viper.SetDefault("productos_file", "productos.csv")
	viper.SetDefault("stock_file", "stock_data.json")
	viper.SetDefault("ventas_file", "ventas.csv")
	viper.SetDefault("historial_file", "historial.txt")
	viper.SetDefault("page_size", 5)
	viper.SetDefault("ticket_pdf", false)
	viper.SetDefault("ticket_pdf_dir", "tickets")

	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProductosPath returns the absolute-ish path of the catalog file.
func (c *Config) ProductosPath() string { return filepath.Join(c.DataDir, c.ProductosFile) }

// StockPath returns the path of the stock ledger file.
func (c *Config) StockPath() string { return filepath.Join(c.DataDir, c.StockFile) }

// VentasPath returns the path of the sales log file.
func (c *Config) VentasPath() string { return filepath.Join(c.DataDir, c.VentasFile) }

// HistorialPath returns the path of the action history file.
func (c *Config) HistorialPath() string { return filepath.Join(c.DataDir, c.HistorialFile) }
