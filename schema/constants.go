package schema

// Custom string types for type safety.
type (
	// IntentKind tags the replayable operation variants.
	IntentKind string

	// OutcomeKind classifies the result of one remote call.
	OutcomeKind string

	// ChallengeState represents the state of the re-auth coordinator.
	ChallengeState string

	// OperationStatus is the settled status of one user-issued operation.
	OperationStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for session storage.
	DatabaseBackend string
)

// All intent kinds supported.
const (
	IntentListAll IntentKind = "list_all"
	IntentAdd     IntentKind = "add"
	IntentDelete  IntentKind = "delete"
)

// All outcome kinds a gateway call can settle into.
const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeAuthExpired  OutcomeKind = "auth_expired"
	OutcomeClientError  OutcomeKind = "client_error"
	OutcomeServerError  OutcomeKind = "server_error"
	OutcomeNetworkError OutcomeKind = "network_error"
)

// All re-auth coordinator states.
const (
	ChallengeIdle       ChallengeState = "idle"
	ChallengeOpen       ChallengeState = "open"
	ChallengeExchanging ChallengeState = "exchanging"
	ChallengeResolved   ChallengeState = "resolved"
	ChallengeAbandoned  ChallengeState = "abandoned"
)

// All operation statuses reported to the caller.
const (
	StatusOK            OperationStatus = "ok"
	StatusPendingReauth OperationStatus = "pending_reauth"
	StatusFailed        OperationStatus = "failed"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All session backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid session backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
