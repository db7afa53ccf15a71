package handler

import "time"

const (
	headerContentType        = "Content-Type"
	headerContentDisposition = "Content-Disposition"
	contentTypeJSON          = "application/json"

	readinessTimeout = 2 * time.Second

	rankingsExportFile = "rankings.xlsx"
	ledgerExportFile   = "ledger-%s.xlsx"
)

// Readiness check names and states
const (
	checkDatabase     = "database"
	checkStatTables   = "stat_tables"
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// Query and URL parameter names
const (
	paramID          = "id"
	paramA           = "a"
	paramB           = "b"
	paramServer      = "server"
	paramClass       = "class"
	paramLimit       = "limit"
	paramCharacterID = "character_id"
	paramFrom        = "from"
	paramTo          = "to"
	paramAsync       = "async"
)

// Log messages
const (
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgExportFailed      = "Failed to write export"
	LogMsgProfileEvaluated  = "Ad-hoc profile evaluated"
	LogMsgLeaderboardServed = "Leaderboard served"
)
