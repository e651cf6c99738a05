package slots

import mapset "github.com/deckarep/golang-set/v2"

// Disconnector is satisfied by every Connection.
type Disconnector interface {
	Disconnect() bool
	Connected() bool
}

// Subscriptions holds the connections a consumer made so that they can all be
// torn down together when the consumer goes away. Safe for concurrent use.
type Subscriptions struct {
	conns mapset.Set[Disconnector]
}

func NewSubscriptions(conns ...Disconnector) *Subscriptions {
	return &Subscriptions{conns: mapset.NewSet(conns...)}
}

// Add tracks c. Closed connections are ignored.
func (s *Subscriptions) Add(c Disconnector) bool {
	if !c.Connected() {
		return false
	}
	return s.conns.Add(c)
}

// Remove disconnects c and stops tracking it.
func (s *Subscriptions) Remove(c Disconnector) bool {
	if !s.conns.Contains(c) {
		return false
	}
	s.conns.Remove(c)
	return c.Disconnect()
}

func (s *Subscriptions) Len() int {
	return s.conns.Cardinality()
}

// Dispose disconnects every tracked connection and returns how many were still
// connected.
func (s *Subscriptions) Dispose() int {
	n := 0
	for _, c := range s.conns.ToSlice() {
		if c.Disconnect() {
			n++
		}
	}
	s.conns.Clear()
	return n
}
