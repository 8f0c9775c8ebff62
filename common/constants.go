package common

const (
	SrcFileExtension = ".sol"
	ConfigFileName   = "soluna.toml"
	SolunaVersion    = "0.1.0"
)
