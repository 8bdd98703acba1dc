package errs

import "github.com/m-mizutani/goerr/v2"

// Error classification tags. User-triggered operations are converted to
// explanatory messages at the usecase boundary based on these tags; only
// untagged errors surface as generic failures.
var (
	TagNotFound   = goerr.NewTag("not_found")  // no matching data, branch or record
	TagValidation = goerr.NewTag("validation") // malformed user input
	TagExternal   = goerr.NewTag("external")   // upload or record store unavailable
	TagConfig     = goerr.NewTag("config")     // missing dataset or alias source
)

var (
	ErrNoRenderData   = goerr.New("no data matches the render request", goerr.T(TagNotFound))
	ErrExamNotFound   = goerr.New("no exam record for user", goerr.T(TagNotFound))
	ErrBranchNotFound = goerr.New("no such branch", goerr.T(TagNotFound))
)
