package domain

type VisitType string

const (
	VisitSIV VisitType = "SIV"
	VisitIMV VisitType = "IMV"
	VisitCOV VisitType = "COV"
	VisitPSV VisitType = "PSV"
)

type VisitMode string

const (
	ModeOnSite VisitMode = "On-site"
	ModeRemote VisitMode = "Remote"
)

type VisitStatus string

const (
	VisitScheduled  VisitStatus = "scheduled"
	VisitInProgress VisitStatus = "in-progress"
	VisitCompleted  VisitStatus = "completed"
)

type IsfStatus string

const (
	IsfPresent IsfStatus = "Present"
	IsfMissing IsfStatus = "Missing"
	IsfExpired IsfStatus = "Expired/Needs Update"
	IsfNA      IsfStatus = "N/A"
)

// ValidVisitTypes is the canonical set of accepted visit type strings.
var ValidVisitTypes = map[string]bool{
	"SIV": true, "IMV": true, "COV": true, "PSV": true,
}

// ValidVisitModes is the canonical set of accepted visit mode strings.
var ValidVisitModes = map[string]bool{
	"On-site": true, "Remote": true,
}

// ValidIsfStatuses is the canonical set of accepted ISF item statuses.
var ValidIsfStatuses = map[string]bool{
	"Present": true, "Missing": true, "Expired/Needs Update": true, "N/A": true,
}
