package skedda

// candidate pairs a structural selector with a short description for logs.
// Order encodes priority: the first matching, visible, enabled element wins.
type candidate struct {
	selector string
	desc     string
}

// Elements whose presence means the booking form is already on screen, i.e.
// the session is authenticated.
var bookingFormProbes = []candidate{
	{"input[name=title]", "booking title input"},
	{"[data-booking-form]", "booking form marker"},
	{"form.booking-form", "booking form"},
	{".booking-panel input[type=text]", "booking panel text input"},
}

var loginEmailFields = []candidate{
	{"input[type=email]", "email input"},
	{"input[name=username]", "username input"},
	{"input[name=email]", "named email input"},
	{"input[autocomplete=username]", "autocomplete username input"},
}

var loginPasswordFields = []candidate{
	{"input[type=password]", "password input"},
	{"input[name=password]", "named password input"},
}

var loginSubmitButtons = []candidate{
	{"form button[type=submit]", "login form submit"},
	{"input[type=submit]", "submit input"},
	{"button[type=submit]", "generic submit button"},
}

var titleFields = []candidate{
	{"input[name=title]", "title input"},
	{"#title", "title by id"},
	{"input[placeholder*=Title]", "title by placeholder"},
	{".booking-panel input[type=text]", "booking panel text input"},
}

var signatureFields = []candidate{
	{"input[name=signature]", "signature input"},
	{"#signature", "signature by id"},
	{"input[placeholder*=Signature]", "signature by placeholder"},
	{"textarea[name=signature]", "signature textarea"},
}

// Structural confirm-button candidates, most specific (layout-scoped) first,
// most generic last.
var confirmButtons = []candidate{
	{".booking-actions button[type=submit]", "booking actions submit"},
	{".modal-footer button.btn-success", "modal footer success button"},
	{"button.btn-success[type=submit]", "success submit button"},
	{"button[type=submit]", "generic submit button"},
}

// Text-phase fallback keywords, in priority order, matched case-insensitively
// against trimmed button text.
var confirmKeywords = []string{"confirm", "book", "submit"}

// Modal-scoped selectors for the post-submission dialog.
var dialogConfirmButtons = []candidate{
	{".modal.show button.btn-primary", "shown modal primary button"},
	{".modal-dialog button[type=submit]", "modal dialog submit"},
	{"[role=dialog] button.btn-primary", "aria dialog primary button"},
	{".swal2-confirm", "sweetalert confirm"},
}

// Containers the text-based dialog probe is restricted to.
var dialogContainers = []string{".modal", "[role=dialog]", ".popup", ".dialog"}

// Error banners the verifier scans, first visible non-empty text wins.
var errorBanners = []string{
	".alert-danger",
	"[role=alert]",
	".validation-summary-errors",
	"[class*=error]",
	".text-danger",
}
