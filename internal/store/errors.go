package store

import "errors"

// ErrLocalSessionNotFound is returned by [SessionRepository.Load] when
// no complete session record is persisted locally. Absence of either
// half (user or session) is treated as "no session".
var ErrLocalSessionNotFound = errors.New("local session not found")
