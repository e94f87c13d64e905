package walk

import (
	"fmt"
	"sync"

	"github.com/minseokang/walkmate/internal/domain"
)

// Thresholds are the completion percentages at which a progress alert fires,
// each at most once per session.
var Thresholds = []int{10, 30, 50, 70, 100}

// Notifier watches elapsed time against the recommended walk duration and
// fires a one-shot alert per crossed threshold. Fired thresholds are cleared
// only by Reset, so a new session can fire them again.
type Notifier struct {
	mu           sync.Mutex
	totalSeconds int
	fired        map[int]bool
	sink         domain.NotificationSink
	dogName      string
}

// NewNotifier creates a notifier for a session with the given recommended
// walk duration in minutes.
func NewNotifier(recommendedMinutes int, dogName string, sink domain.NotificationSink) *Notifier {
	return &Notifier{
		totalSeconds: recommendedMinutes * 60,
		fired:        make(map[int]bool),
		sink:         sink,
		dogName:      dogName,
	}
}

// Observe checks elapsed seconds against all thresholds and delivers one
// alert per newly crossed threshold. Returns the percentages fired by this
// call. A tick that arrives late crosses every threshold it skipped.
func (n *Notifier) Observe(elapsedSeconds int) []int {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.totalSeconds <= 0 {
		return nil
	}

	var crossed []int
	for _, pct := range Thresholds {
		if n.fired[pct] {
			continue
		}
		if elapsedSeconds >= n.totalSeconds*pct/100 {
			n.fired[pct] = true
			crossed = append(crossed, pct)
			n.deliver(pct)
		}
	}
	return crossed
}

// Reset clears the fired set so thresholds can fire again next session.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fired = make(map[int]bool)
}

func (n *Notifier) deliver(pct int) {
	if n.sink == nil {
		return
	}
	var body string
	if pct >= 100 {
		body = fmt.Sprintf("%s finished the recommended walk. Great job! 🎉", n.dogName)
	} else {
		body = fmt.Sprintf("%s is %d%% through the recommended walk.", n.dogName, pct)
	}
	n.sink.Deliver("Walk progress", body)
}
