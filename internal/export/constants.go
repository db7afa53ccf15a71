package export

// Sheet names
const (
	SheetLeaderboard = "Leaderboard"
	SheetTiers       = "Tiers"
	SheetEntries     = "Entries"
	SheetSummary     = "Summary"
)

// ContentTypeXLSX is the MIME type of the produced workbooks
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

const timestampLayout = "2006-01-02 15:04:05"

var (
	leaderboardHeader = []string{"Rank", "Name", "Server", "Class", "Score", "Grade", "Percentile"}
	tierHeader        = []string{"Class", "Count", "Average", "Median", "Tier"}
	entryHeader       = []string{"Occurred (UTC)", "Category", "Amount", "Note"}
)

// Error messages
const (
	ErrMsgWriteCell     = "failed to write cell %s!%s: %w"
	ErrMsgStyle         = "failed to style sheet %s: %w"
	ErrMsgWriteWorkbook = "failed to write workbook: %w"
)
