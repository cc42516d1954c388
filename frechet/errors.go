package frechet

import "errors"

// ErrDimensionMismatch is returned by operations that require both
// curves to have at least one vertex each.
var ErrDimensionMismatch = errors.New("frechet: curve has no vertices")

// ErrNoCertificate reports a certificate requested without certificate
// bookkeeping bound (hooks nil). No function in this package currently
// returns it: ComputeCertificate has no error result.
var ErrNoCertificate = errors.New("frechet: certificate requested without hooks bound")

// ErrCertificateUnsound is returned by Decider.Certificate when
// CheckCertificate's independent replay finds the certificate does not
// actually witness its claimed answer.
var ErrCertificateUnsound = errors.New("frechet: certificate failed independent verification")
