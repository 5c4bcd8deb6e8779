package catalog

import (
	"fmt"

	"github.com/edvall/cratrack/internal/domain"
)

// IsfEntry is one row of the master site-file inventory: section, document
// label, and guidance text copied verbatim onto each instantiated item.
type IsfEntry struct {
	Section     string
	Label       string
	Description string
}

// isfCatalog is the fixed site-file inventory, identical for every visit.
// Order is authoritative: items are instantiated and displayed in this order,
// grouped by section.
var isfCatalog = []IsfEntry{
	{Section: "Protocol & Regulatory", Label: "CSP v6.0", Description: "Current Protocol (19Nov2024)"},
	{Section: "Protocol & Regulatory", Label: "CSP v5.0", Description: "Previous Protocol (29Aug2023)"},
	{Section: "Protocol & Regulatory", Label: "CSP v4.0", Description: "Archived Protocol (21Feb2023)"},
	{Section: "Protocol & Regulatory", Label: "Protocol Agreement Form", Description: "Signed by PI"},
	{Section: "Protocol & Regulatory", Label: "FDA-1572", Description: "Must list current site address and labs"},
	{Section: "Protocol & Regulatory", Label: "Financial Disclosure Forms (FDF)", Description: "For all investigators listed on 1572"},
	{Section: "Protocol & Regulatory", Label: "CVs & Medical Licenses", Description: "Current for all PI/Sub-I"},
	{Section: "Protocol & Regulatory", Label: "Delegation of Responsibilities (DoR) Log", Description: "Must match 1572 and Training Logs"},
	{Section: "Investigator Brochure", Label: "Breztri IB v10", Description: "Current Version"},
	{Section: "Investigator Brochure", Label: "Symbicort IB v13", Description: "Current Version"},
	{Section: "Investigator Brochure", Label: "IB Acknowledgement of Receipt", Description: "Signed by PI"},
	{Section: "IRB/IEC", Label: "IRB Approvals", Description: "Protocol, IB, ICFs, Ads"},
	{Section: "IRB/IEC", Label: "Approved ICFs", Description: "Clean and Tracked versions"},
	{Section: "IRB/IEC", Label: "IRB Roster / Composition", Description: "Current version"},
	{Section: "IRB/IEC", Label: "Continuing Review Approvals", Description: "Annual re-approvals"},
	{Section: "Safety", Label: "SAE Report Forms", Description: "Paper copies (if RAVE down)"},
	{Section: "Safety", Label: "Medication Error Report Forms", Description: "Blank copies available"},
	{Section: "Safety", Label: "Pregnancy Outcome Forms", Description: "Blank copies available"},
	{Section: "Safety", Label: "Safety Notification Letters", Description: "Acknowledged by PI"},
	{Section: "Vendors & Manuals", Label: "LabCorp Manual v6.0", Description: "Current Lab Manual"},
	{Section: "Vendors & Manuals", Label: "Specimen Collection Guide", Description: "LabCorp"},
	{Section: "Vendors & Manuals", Label: "Signant IRT User Guide", Description: "IP Management"},
	{Section: "Vendors & Manuals", Label: "MonTe User Guide", Description: "Temperature Monitoring"},
	{Section: "Vendors & Manuals", Label: "Clario eCOA Manual", Description: "Device instructions"},
	{Section: "Vendors & Manuals", Label: "NIOX User Manual", Description: "FeNO testing"},
	{Section: "IP & Supplies", Label: "Drug Dispensing Log", Description: "Current and up to date"},
	{Section: "IP & Supplies", Label: "Shipping Invoices/Receipts", Description: "Acknowledged in IRT"},
	{Section: "IP & Supplies", Label: "Temperature Logs", Description: "MonTe downloads / excursion reports"},
	{Section: "IP & Supplies", Label: "IP Return/Destruction Records", Description: "If applicable"},
	{Section: "Subject Logs", Label: "Screening & Enrollment Log", Description: "Up to date"},
	{Section: "Subject Logs", Label: "Subject Identification Log", Description: "Confidential - stored separately?"},
	{Section: "Subject Logs", Label: "HBS (Biosample) Log", Description: "Tracking CONSENT for samples"},
}

// IsfEntries returns the full catalog in order.
func IsfEntries() []IsfEntry {
	out := make([]IsfEntry, len(isfCatalog))
	copy(out, isfCatalog)
	return out
}

// IsfItems instantiates the catalog for a visit: one item per entry, ids
// scoped to the visit, every status N/A.
func IsfItems(visitID string) []domain.IsfItem {
	items := make([]domain.IsfItem, len(isfCatalog))
	for i, entry := range isfCatalog {
		items[i] = domain.IsfItem{
			ID:          fmt.Sprintf("%s-isf-%d", visitID, i+1),
			Section:     entry.Section,
			Label:       entry.Label,
			Description: entry.Description,
			Status:      domain.IsfNA,
		}
	}
	return items
}
