package common

const (
	// CONNECTOR name to identify the connector component (proof intake and replay guard)
	CONNECTOR = "connector"
	// RPC name to identify the rpc component (implies connector)
	RPC = "rpc"
	// PROVER name to identify the prover client
	PROVER = "prover"
	// LEDGER name to identify the ledger client
	LEDGER = "ledger"
)
