package gconf

import (
	"chessview/src/ui/gui/gbase"
	"encoding/json"
	"fmt"
	"os"
)

const ConfigFile string = "chessview.json"

type Config struct {
	Theme     string `json:"theme"`      // light/dark
	Lang      string `json:"language"`   // en/ru
	SheetPath string `json:"sheet_path"` // png, 5 columns x 2 rows; empty for the built-in sheet
	FEN       string `json:"fen"`        // initial position; empty for the start position
	WindowH   int    `json:"window_h"`   //
	WindowW   int    `json:"window_w"`   //
	Debug     bool   `json:"debug"`      // entity count and FPS on the status line
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		Lang:      "en",
		SheetPath: "",
		FEN:       "",
		WindowH:   gbase.WindowH,
		WindowW:   gbase.WindowW,
		Debug:     false,
	}
}

func NewGUIConfig() (*Config, error) {
	return LoadConfig(ConfigFile)
}

// missing file gives the defaults
func LoadConfig(file string) (*Config, error) {
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &c, nil
}

// Save writes the config back, used to remember the last position
func (c *Config) Save(file string) error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
