package clock

import "time"

// Clock abstrai o "agora" para que use cases e auditoria
// sejam determinísticos em teste.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func System() Clock {
	return systemClock{}
}

// Fixed devolve sempre o mesmo instante.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
