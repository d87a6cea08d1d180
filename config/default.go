package config

// DefaultMandatoryVars have no sensible default, they depend on the deployment
const DefaultMandatoryVars = `
# AccountID is the account the connector acts as on the host chain
AccountID = "connector.near"

# ProverURL is the JSON-RPC endpoint of the prover
ProverURL = "http://localhost:8547"

# LedgerURL is the JSON-RPC endpoint of the token ledger
LedgerURL = "http://localhost:8548"
`

// DefaultVars are used to avoid repetition in config files
const DefaultVars = `
PathRWData = "/tmp/eth-connector"
`

// DefaultValues is the default configuration
const DefaultValues = `
# This is the default configuration for the eth-connector node

# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

# Common configuration
[Common]
  # AccountID is the account the connector acts as, the finish callbacks
  # are only accepted from it
  AccountID = "{{AccountID}}"

# Connector configuration
[Connector]
  # StoragePath is the sqlite file with the replay set and the init configuration
  StoragePath = "{{PathRWData}}/connector.sqlite"
  # ProverURL is the JSON-RPC endpoint of the prover
  ProverURL = "{{ProverURL}}"
  # LedgerURL is the JSON-RPC endpoint of the token ledger
  LedgerURL = "{{LedgerURL}}"
  # StoragePricePerByte is charged from the attached deposit for each byte the replay set grows
  StoragePricePerByte = "100000000000000000000"
  # VerifyTimeout is the max time waiting for the prover, 0 means no limit
  VerifyTimeout = "30s"
  # RetryCreditInterval is how often the failed credits are retried, 0 disables the retries
  RetryCreditInterval = "1m"
  # SkipBridgeCall asks the prover to skip the header check, only allowed on DevelopmentMode
  SkipBridgeCall = false
  # DevelopmentMode allows diagnostic settings
  DevelopmentMode = false
  # LockEnabled enables the legacy lock path
  LockEnabled = false
  # UnlockEnabled enables the legacy unlock path
  UnlockEnabled = false

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout, it has to be longer than Connector.VerifyTimeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "60s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10
`
