package main

import "time"

type Config struct {
	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
	MaxContentLength int           `env:"MAX_CONTENT_LENGTH,default=1000"`
	NewSetDelta      time.Duration `env:"NEW_SET_DELTA,default=5m"`
	CensoredWords    string        `env:"CENSORED_WORDS"`
	CensoredChar     string        `env:"CENSORED_CHARACTER,default=*"`
}
