package frechet

import (
	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/metrics"
)

// LessThan decides lessThan(delta, P, Q), the production entry point
// (spec §4.1): run the sound filter pipeline first when enabled, fall
// through to the configured decider algorithm otherwise. m, if non-nil,
// is updated with which stage resolved the call.
func (d *Decider) LessThan(P, Q *curve.Curve, delta float64, m *metrics.Metrics) (bool, error) {
	if err := validateCurves(P, Q); err != nil {
		return false, err
	}

	if d.opts.UseFilters {
		if fr := RunFilters(P, Q, delta); fr.Resolved {
			if m != nil {
				m.RecordFilterDecision(fr.Kind)
			}

			return fr.LessThan, nil
		}
	}

	if m != nil {
		m.RecordDeciderInvocation()
	}

	switch d.opts.Algorithm {
	case Naive:
		return LessThanNaive(P, Q, delta, d.opts.Hooks), nil
	default:
		d.c.clear()
		ans, boxes := lessThanLightCached(P, Q, delta, d.opts, &d.c)
		if m != nil {
			m.BoxesVisited += boxes
		}

		return ans, nil
	}
}

// Certificate builds and independently checks a Certificate for
// lessThan(delta, P, Q), per spec §4.4/§4.5. The answer returned always
// matches d.LessThan for the same inputs: certificate construction runs
// its own (naive-grounded) decision path rather than trusting whichever
// algorithm resolved the boolean query.
func (d *Decider) Certificate(P, Q *curve.Curve, delta float64, m *metrics.Metrics) (*Certificate, error) {
	if err := validateCurves(P, Q); err != nil {
		return nil, err
	}

	cert := ComputeCertificate(P, Q, delta)
	cert.Verified = CheckCertificate(P, Q, delta, cert)

	if m != nil {
		m.CertificatesChecked++
		if !cert.Verified {
			m.CertificatesFailed++
		}
	}

	if !cert.Verified {
		return cert, ErrCertificateUnsound
	}

	return cert, nil
}

func validateCurves(P, Q *curve.Curve) error {
	if P == nil || Q == nil || P.Len() == 0 || Q.Len() == 0 {
		return ErrDimensionMismatch
	}

	return nil
}
