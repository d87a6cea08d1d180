package common

type Config struct {
	// AccountID is the account of the connector on the host chain. Bridge token accounts
	// are sub accounts of it and the verification callback must come from it
	AccountID string `mapstructure:"AccountID"`
}
