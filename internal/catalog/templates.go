package catalog

import (
	"fmt"

	"github.com/edvall/cratrack/internal/domain"
)

// TemplateItem is one entry of a checklist template: label and category only,
// everything else is assigned at instantiation.
type TemplateItem struct {
	Label    string
	Category string
}

// remoteKey selects the remote data check template when a visit is run
// off-site, regardless of its nominal type.
const remoteKey = "RDC"

// defaultKey is the fallback template for unrecognized visit types.
const defaultKey = string(domain.VisitIMV)

// checklistTemplates maps visit type (plus the RDC remote specialization) to
// an ordered task list. Content is fixed; visits receive copies.
var checklistTemplates = map[string][]TemplateItem{
	string(domain.VisitIMV): {
		{Label: "Data Entry up to date?", Category: "EDC (RAVE)"},
		{Label: "Queries over 30 days resolved?", Category: "EDC (RAVE)"},
		{Label: "Pending Investigator eCRF reviews cleared?", Category: "EDC (RAVE)"},
		{Label: "IP Inventory adequate?", Category: "IP Management (IRT)"},
		{Label: "Expiry risk checked (<30/60 days)?", Category: "IP Management (IRT)"},
		{Label: "Shipments acknowledged in IRT?", Category: "IP Management (IRT)"},
		{Label: "All shipments uploaded?", Category: "Shipments (MonTe)"},
		{Label: "Temp excursions reported?", Category: "Shipments (MonTe)"},
		{Label: "Any new SAEs since last visit?", Category: "Safety"},
	},
	string(domain.VisitCOV): {
		{Label: "IP Accountability Center Level Summary collected?", Category: "IP Accountability"},
		{Label: "Drug Dispensing Log final version collected?", Category: "IP Accountability"},
		{Label: "IP Return/Destruction certificates filed?", Category: "IP Accountability"},
		{Label: "IRB Notification of Trial Termination uploaded?", Category: "Regulatory & IRB"},
		{Label: "Final Site Signature Sheet reviewed for pagination?", Category: "Regulatory & IRB"},
		{Label: "Site Closure Form submitted?", Category: "Regulatory & IRB"},
		{Label: "Final Delegation Log collected?", Category: "Site Staff"},
		{Label: "All training records accounted for?", Category: "Site Staff"},
	},
	string(domain.VisitPSV): {
		{Label: "Facility assessment complete?", Category: "Feasibility"},
		{Label: "PI Qualifications verified?", Category: "Feasibility"},
		{Label: "Staffing levels confirmed?", Category: "Feasibility"},
	},
	string(domain.VisitSIV): {
		{Label: "SIV Attendance Log signed?", Category: "Training"},
		{Label: "Protocol training recorded?", Category: "Training"},
		{Label: "System access (RAVE/IRT) confirmed for all staff?", Category: "Training"},
	},
	remoteKey: {
		{Label: "Data Entry up to date?", Category: "RAVE (EDC)"},
		{Label: "Oldest aging queries addressed?", Category: "RAVE (EDC)"},
		{Label: "Any queries >30 days open?", Category: "RAVE (EDC)"},
		{Label: "Site Monitor queries closed?", Category: "RAVE (EDC)"},
		{Label: "Missing pages addressed?", Category: "RAVE (EDC)"},
		{Label: "Subject Status accurate vs EDC?", Category: "RAVE (EDC)"},
		{Label: "IP Inventory Adequate?", Category: "Signant IRT"},
		{Label: "Expiry risk check (<60d)?", Category: "Signant IRT"},
		{Label: "Pending Shipments received in IRT?", Category: "Signant IRT"},
		{Label: "MonTe (Shipments) Uploaded?", Category: "Signant IRT"},
		{Label: "Pending MARs >30 days?", Category: "CM Dashboard"},
		{Label: "SAEs pending eCRF completion?", Category: "CM Dashboard"},
		{Label: "Lab Kits stock adequate?", Category: "Central Lab"},
		{Label: "Expiring kits identified?", Category: "Central Lab"},
		{Label: "Open Lab Queries?", Category: "Central Lab"},
		{Label: "Unify accounts active for all randomized?", Category: "Unify"},
		{Label: "HEs Compliance <60% flagged?", Category: "Unify"},
		{Label: "Overdose reports acknowledged?", Category: "Unify"},
		{Label: "Required site staff active?", Category: "Clario"},
		{Label: "Subject visits complete?", Category: "Clario"},
		{Label: "Any new AEs or SAEs since last RDC?", Category: "Safety"},
		{Label: "Adjudicated events in JUDI?", Category: "JUDI"},
		{Label: "Spirometry Uploads complete?", Category: "JUDI"},
		{Label: "Open Spirometry QC queries?", Category: "JUDI"},
	},
}

// SelectTemplate resolves the checklist template for a visit. Remote visits
// take the RDC template when one exists, otherwise the type-specific template
// applies, and unrecognized types fall back to the default. Creation never
// fails on an unknown type.
func SelectTemplate(t domain.VisitType, m domain.VisitMode) []TemplateItem {
	key := string(t)
	if m == domain.ModeRemote {
		if _, ok := checklistTemplates[remoteKey]; ok {
			key = remoteKey
		}
	}
	tpl, ok := checklistTemplates[key]
	if !ok {
		tpl = checklistTemplates[defaultKey]
	}
	return tpl
}

// Checklist instantiates the selected template for a visit: a fresh copy with
// ids scoped to the owning visit and every item incomplete.
func Checklist(visitID string, t domain.VisitType, m domain.VisitMode) []domain.ChecklistItem {
	tpl := SelectTemplate(t, m)
	items := make([]domain.ChecklistItem, len(tpl))
	for i, entry := range tpl {
		items[i] = domain.ChecklistItem{
			ID:       fmt.Sprintf("%s-%d", visitID, i),
			Label:    entry.Label,
			Category: entry.Category,
		}
	}
	return items
}
