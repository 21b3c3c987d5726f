// Package safety implements the emergency side-channel check. It is
// deliberately decoupled from the allow/block verdict: a message about an
// emergency should still reach the other companions while also triggering
// the contact-staff prompt.
package safety

import (
	"github.com/WardMate/ChatGuard/pkg/patterns"
)

// StaffPromptText is the fixed system message surfaced whenever an
// emergency signal is detected, regardless of the moderation outcome.
const StaffPromptText = "If you or someone near you needs urgent help, please contact the hospital staff at the front desk immediately."

type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// DetectEmergency reports whether the text mentions a medical or self-harm
// emergency. Synchronous, CPU-only, never blocks.
func (d *Detector) DetectEmergency(text string) bool {
	_, ok := patterns.Emergency.Match(text)
	return ok
}
