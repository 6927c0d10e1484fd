package booking

import "net/url"

// DeepLink builds the pre-parameterized booking URL the target site accepts.
// Start and end are encoded as ISO-8601 local timestamps (date + "T" + time +
// ":00"); no timezone conversion happens anywhere, the wall-clock strings pass
// straight through. Inputs are assumed pre-validated by the caller.
func DeepLink(baseURL, spaceID, date, start, end string) string {
	q := url.Values{}
	q.Set("nbstart", date+"T"+start+":00")
	q.Set("nbend", date+"T"+end+":00")
	q.Set("nbspaces", spaceID)
	return baseURL + "?" + q.Encode()
}
