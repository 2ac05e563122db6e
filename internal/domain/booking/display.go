package booking

// StatusDisplay is the presentation mapping used by every list and detail
// view. Labels are Swedish, matching the CRM locale.
type StatusDisplay struct {
	Label      string `json:"label"`
	ColorClass string `json:"colorClass"`
}

var statusDisplays = map[Status]StatusDisplay{
	StatusDraft:     {Label: "Utkast", ColorClass: "bg-gray-100 text-gray-800"},
	StatusPending:   {Label: "Väntande", ColorClass: "bg-yellow-100 text-yellow-800"},
	StatusConfirmed: {Label: "Bekräftad", ColorClass: "bg-green-100 text-green-800"},
	StatusCompleted: {Label: "Slutförd", ColorClass: "bg-blue-100 text-blue-800"},
	StatusCancelled: {Label: "Avbokad", ColorClass: "bg-red-100 text-red-800"},
}

// Display falls back to the raw status value for unknown inputs rather than
// failing; the mapping is a pure view concern.
func (s Status) Display() StatusDisplay {
	if d, ok := statusDisplays[s]; ok {
		return d
	}
	return StatusDisplay{Label: string(s), ColorClass: "bg-gray-100 text-gray-800"}
}
