package usecases

import (
	"startup-nexus.backend/internal/config"
	"startup-nexus.backend/pkg/utils"
)

// EmailScreen applies the moderation policy to email addresses.
type EmailScreen struct {
	freeMail    map[string]struct{}
	disposable  map[string]struct{}
	minDigitRun int
}

func NewEmailScreen(policy config.ModerationPolicy) *EmailScreen {
	s := &EmailScreen{
		freeMail:    make(map[string]struct{}, len(policy.FreeMailDomains)),
		disposable:  make(map[string]struct{}, len(policy.DisposableDomains)),
		minDigitRun: policy.MinDigitRun,
	}
	for _, d := range policy.FreeMailDomains {
		s.freeMail[utils.NormalizeEmail(d)] = struct{}{}
	}
	for _, d := range policy.DisposableDomains {
		s.disposable[utils.NormalizeEmail(d)] = struct{}{}
	}
	if s.minDigitRun <= 0 {
		s.minDigitRun = config.DefaultModerationPolicy().MinDigitRun
	}
	return s
}

// IsFreeMail reports whether the address uses a consumer mail provider.
func (s *EmailScreen) IsFreeMail(email string) bool {
	_, domain, ok := utils.SplitEmail(email)
	if !ok {
		return false
	}
	_, free := s.freeMail[domain]
	return free
}

// FakeReason returns why an address looks like a throwaway account, if it does.
func (s *EmailScreen) FakeReason(email string) (string, bool) {
	local, domain, ok := utils.SplitEmail(email)
	if !ok {
		return "", false
	}
	if _, bad := s.disposable[domain]; bad {
		return ReasonDisposableDomain, true
	}
	if longestDigitRun(local) >= s.minDigitRun {
		return ReasonDigitRun, true
	}
	return "", false
}

func longestDigitRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}
