package netdiscover

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver/mocks"
)

func TestTXTRecords(t *testing.T) {
	txt := TXTRecords([]string{"sn=42", "model=SS-900", "multi", "=x", "name=a=b"})
	assert.Equal(t, map[string]string{
		"sn":    "42",
		"model": "SS-900",
		"multi": "",
		"name":  "a=b",
	}, txt)
}

func TestEntrySummary(t *testing.T) {
	e := Entry{
		Instance: "Sonar 1",
		Host:     "sonar1.local.",
		Port:     5000,
		Text:     []string{"sn=SN-7", "name=Side scan", "model=SS-900", "multi=1"},
		Addrs:    []string{"10.0.0.5", "fe80::1"},
	}
	d, ok := e.Summary("tcp")
	require.True(t, ok)
	assert.Equal(t, "SN-7", d.ID)
	assert.Equal(t, "Side scan", d.Name)
	assert.Equal(t, "SS-900", d.Model)
	assert.Equal(t, "tcp://10.0.0.5:5000", d.URI)
	assert.True(t, d.Multi)
}

func TestEntrySummaryDefaults(t *testing.T) {
	e := Entry{Instance: "Sonar 2", Port: 6000, Addrs: []string{"fe80::2"}}

	d1, ok := e.Summary("udp")
	require.True(t, ok)
	d2, _ := e.Summary("udp")

	assert.Equal(t, "Sonar 2", d1.Name)
	assert.Equal(t, "udp://[fe80::2]:6000", d1.URI)
	assert.NotEmpty(t, d1.ID)
	assert.Equal(t, d1.ID, d2.ID)
	assert.False(t, d1.Multi)

	_, ok = Entry{Instance: "x", Port: 1}.Summary("tcp")
	assert.False(t, ok)
	_, ok = Entry{Instance: "x", Host: "h"}.Summary("tcp")
	assert.False(t, ok)
}

func TestAddMergesAndRemove(t *testing.T) {
	s := New(Config{})

	s.add(Entry{Instance: "a", Port: 1, Addrs: []string{"10.0.0.1"}})
	s.add(Entry{Instance: "a", Port: 1, Addrs: []string{"10.0.0.1", "10.0.1.1"}})
	s.add(Entry{Instance: "", Port: 1, Addrs: []string{"10.0.0.9"}})
	require.Len(t, s.List(), 1)
	assert.Equal(t, []string{"10.0.0.1", "10.0.1.1"}, s.entries["a"].Addrs)

	s.remove(Entry{Instance: "a", Addrs: []string{"10.0.0.1"}})
	require.Len(t, s.List(), 1)
	assert.Equal(t, "tcp://10.0.1.1:1", s.List()[0].URI)

	s.remove(Entry{Instance: "a", Addrs: []string{"10.0.1.1"}})
	assert.Empty(t, s.List())
}

// fakeBrowse sends the given entries and then waits for cancellation.
func fakeBrowse(found ...*zeroconf.ServiceEntry) BrowseFunc {
	return func(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry) error {
		for _, e := range found {
			select {
			case entries <- e:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		<-ctx.Done()
		return nil
	}
}

func serviceEntry(instance string, port int, ip string, text ...string) *zeroconf.ServiceEntry {
	e := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: instance, Service: DefaultService, Domain: Domain},
	}
	e.Port = port
	e.Text = text
	e.AddrIPv4 = []net.IP{net.ParseIP(ip)}
	return e
}

func TestScanNotifiesAndLists(t *testing.T) {
	s := New(Config{
		ScanTimeout: 200 * time.Millisecond,
		Browse: fakeBrowse(
			serviceEntry("Sonar B", 5000, "10.0.0.2", "sn=b"),
			serviceEntry("Sonar A", 5000, "10.0.0.1", "sn=a"),
		),
	})

	sub := mocks.NewMockDiscoverSubscriber(t)
	completed := make(chan struct{})

	var mu sync.Mutex
	var progress []float64
	sub.EXPECT().OnProgress(mock.Anything).Run(func(p float64) {
		mu.Lock()
		progress = append(progress, p)
		mu.Unlock()
	}).Return()
	sub.EXPECT().OnCompleted().Run(func() { close(completed) }).Return().Once()

	s.Subscribe(sub)
	require.NoError(t, s.Start())
	require.NoError(t, s.Start())

	select {
	case <-completed:
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not complete")
	}

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "tcp://10.0.0.1:5000", list[0].URI)

	d, ok := s.Lookup("tcp://10.0.0.2:5000")
	assert.True(t, ok)
	assert.Equal(t, "b", d.ID)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, progress)
	assert.Equal(t, 100.0, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1])
	}
}

func TestStopCompletesScan(t *testing.T) {
	s := New(Config{ScanTimeout: time.Hour, Browse: fakeBrowse()})

	sub := mocks.NewMockDiscoverSubscriber(t)
	sub.EXPECT().OnProgress(100.0).Return().Once()
	sub.EXPECT().OnCompleted().Return().Once()
	s.Subscribe(sub)

	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())

	// Stopping an idle scanner is fine.
	require.NoError(t, s.Stop())
}

func TestStopAfterTimeoutWaitsForCompletion(t *testing.T) {
	s := New(Config{ScanTimeout: 10 * time.Millisecond, Browse: fakeBrowse()})

	finishing := make(chan struct{})
	var completed atomic.Bool

	sub := mocks.NewMockDiscoverSubscriber(t)
	sub.EXPECT().OnProgress(mock.Anything).Run(func(p float64) {
		if p == 100 {
			close(finishing)
		}
	}).Return()
	sub.EXPECT().OnCompleted().Run(func() {
		time.Sleep(100 * time.Millisecond)
		completed.Store(true)
	}).Return().Once()
	s.Subscribe(sub)

	require.NoError(t, s.Start())
	select {
	case <-finishing:
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not finish")
	}

	require.NoError(t, s.Stop())
	assert.True(t, completed.Load())
}

func TestUnsubscribe(t *testing.T) {
	s := New(Config{ScanTimeout: time.Hour, Browse: fakeBrowse()})

	sub := mocks.NewMockDiscoverSubscriber(t)
	s.Subscribe(sub)
	s.Unsubscribe(sub)

	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())
}
