package protocol

// Canonical command names understood by the host runner's log parser.
const (
	CmdSetEnv       = "set-env"
	CmdAddPath      = "add-path"
	CmdSetOutput    = "set-output"
	CmdAddMask      = "add-mask"
	CmdDebug        = "debug"
	CmdNotice       = "notice"
	CmdWarning      = "warning"
	CmdError        = "error"
	CmdGroup        = "group"
	CmdEndGroup     = "endgroup"
	CmdEcho         = "echo"
	CmdStopCommands = "stop-commands"
)

// PropName is the property carrying the target variable/output name on the
// legacy stdout forms of set-env and set-output.
const PropName = "name"
