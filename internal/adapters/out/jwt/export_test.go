package jwt

import "time"

func (s *TokenService) SetClock(now func() time.Time) {
	s.now = now
}
