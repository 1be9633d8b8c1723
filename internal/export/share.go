package export

import "github.com/GustavoCaso/spendwise/internal/util"

const (
	shareBaseURL     = "https://spendwise.app/share/"
	shareTokenLength = 12
)

// ShareLink returns a fresh link. Nothing is uploaded; the link only
// travels with the history record.
func ShareLink() string {
	return shareBaseURL + util.RandomToken(shareTokenLength)
}
