package decode

import "tablex/internal/util"

// knownInitials follows the quote numbering convention, which does not
// always match the name ("MAF" for Mark Fleck).
var knownInitials = map[string]string{
	"Mark Fleck":     "MAF",
	"Brian Craig":    "BC",
	"Samatha Sander": "SS",
	"Maya Mitchell":  "MM",
}

func StaffInitials(name string) string {
	if v, ok := knownInitials[name]; ok {
		return v
	}
	return util.Initials(name)
}
