package util

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerURL  string `mapstructure:"SERVER_URL" validate:"required,url"`
	RoomID     string `mapstructure:"ROOM_ID" validate:"required"`
	PlayerName string `mapstructure:"PLAYER_NAME"`
	LogLevel   string `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerURL:  os.Getenv("SERVER_URL"),
		RoomID:     os.Getenv("ROOM_ID"),
		PlayerName: os.Getenv("PLAYER_NAME"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	if err := Validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
