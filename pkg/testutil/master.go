package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// FakeMaster serves the Disco master's rawevents and jobinfo endpoints for a
// single job. Requests for any other job get a 404.
type FakeMaster struct {
	URL string

	mu         sync.Mutex
	job        string
	log        string
	jobInfos   []string
	infoPolls  int
	eventPolls int
	failWith   int
}

// NewFakeMaster starts a fake master for job, closed on test cleanup
func NewFakeMaster(t *testing.T, job string) *FakeMaster {
	t.Helper()

	m := &FakeMaster{job: job}
	mux := http.NewServeMux()
	mux.HandleFunc("/disco/ctrl/rawevents", m.serveEvents)
	mux.HandleFunc("/disco/ctrl/jobinfo", m.serveJobInfo)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	m.URL = srv.URL
	return m
}

// EventLine encodes one event log line, without the newline
func EventLine(timestamp, host, message string) string {
	line, _ := json.Marshal([]string{timestamp, host, message})
	return string(line)
}

// AppendEvents appends newline-terminated lines to the event log
func (m *FakeMaster) AppendEvents(lines ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range lines {
		m.log += line + "\n"
	}
}

// AppendRaw appends raw bytes to the event log
func (m *FakeMaster) AppendRaw(data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log += data
}

// Log returns the whole event log
func (m *FakeMaster) Log() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.log
}

// SetJobInfo sets the jobinfo bodies returned by successive polls; the last
// one repeats.
func (m *FakeMaster) SetJobInfo(bodies ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobInfos = bodies
	m.infoPolls = 0
}

// FailWith makes every endpoint answer with status; 0 restores normal service
func (m *FakeMaster) FailWith(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = status
}

// JobInfoPolls returns how many jobinfo requests were served
func (m *FakeMaster) JobInfoPolls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.infoPolls
}

// EventPolls returns how many rawevents requests were served
func (m *FakeMaster) EventPolls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventPolls
}

func (m *FakeMaster) serveEvents(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.accept(w, r) {
		return
	}
	m.eventPolls++

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 || offset > len(m.log) {
		offset = len(m.log)
	}
	_, _ = w.Write([]byte(m.log[offset:]))
}

func (m *FakeMaster) serveJobInfo(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.accept(w, r) {
		return
	}

	body := "{}"
	if n := len(m.jobInfos); n > 0 {
		i := m.infoPolls
		if i >= n {
			i = n - 1
		}
		body = m.jobInfos[i]
	}
	m.infoPolls++

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (m *FakeMaster) accept(w http.ResponseWriter, r *http.Request) bool {
	if m.failWith != 0 {
		http.Error(w, http.StatusText(m.failWith), m.failWith)
		return false
	}
	if r.URL.Query().Get("name") != m.job {
		http.NotFound(w, r)
		return false
	}
	return true
}
