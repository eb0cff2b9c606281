package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Copy target keys. Social posts use "social-<index>".
const (
	TargetSubject = "subject"
	TargetBody    = "body"
	targetSocial  = "social-"
)

// CopyTarget is one piece of template text the user can put on the clipboard.
type CopyTarget struct {
	Key   string
	Label string
	Text  string
}

// SocialTarget returns the copy key for the social post at index.
func SocialTarget(index int) string {
	return targetSocial + strconv.Itoa(index)
}

// CopyTargets lists the month's copyable templates: every social post in
// order, then the email subject and body.
func (m *Month) CopyTargets() []CopyTarget {
	out := make([]CopyTarget, 0, len(m.SocialPosts)+2)
	for i, p := range m.SocialPosts {
		out = append(out, CopyTarget{Key: SocialTarget(i), Label: string(p.Platform), Text: p.Text})
	}
	out = append(out,
		CopyTarget{Key: TargetSubject, Label: "Email subject", Text: m.EmailSubject},
		CopyTarget{Key: TargetBody, Label: "Email body", Text: m.EmailBody},
	)
	return out
}

// CopyTarget looks up a target by key.
func (m *Month) CopyTarget(key string) (CopyTarget, error) {
	for _, t := range m.CopyTargets() {
		if t.Key == key {
			return t, nil
		}
	}
	if strings.HasPrefix(key, targetSocial) {
		return CopyTarget{}, fmt.Errorf("%s has %d social posts, no %q", m.Name, len(m.SocialPosts), key)
	}
	return CopyTarget{}, fmt.Errorf("unknown template %q", key)
}
