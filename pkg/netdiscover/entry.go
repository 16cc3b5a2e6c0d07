package netdiscover

import (
	"net"
	"strconv"
	"strings"

	"github.com/enbility/zeroconf/v3"
	"github.com/google/uuid"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
)

// TXT record keys.
const (
	TXTKeySerial = "sn"
	TXTKeyName   = "name"
	TXTKeyModel  = "model"
	TXTKeyMulti  = "multi"
)

// Entry is a resolved mDNS service instance.
type Entry struct {
	Instance string
	Host     string
	Port     uint16
	Text     []string
	Addrs    []string
}

func entryFromZeroconf(e *zeroconf.ServiceEntry) Entry {
	addrs := make([]string, 0, len(e.AddrIPv4)+len(e.AddrIPv6))
	for _, ip := range e.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range e.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return Entry{
		Instance: e.Instance,
		Host:     e.HostName,
		Port:     uint16(e.Port),
		Text:     e.Text,
		Addrs:    addrs,
	}
}

// TXTRecords parses "key=value" strings. A key without "=" maps to "".
func TXTRecords(strs []string) map[string]string {
	txt := make(map[string]string)
	for _, s := range strs {
		k, v, _ := strings.Cut(s, "=")
		if k != "" {
			txt[k] = v
		}
	}
	return txt
}

// Summary converts an entry into a device summary with a URI of the given
// scheme. Devices without a serial number get an id derived from the
// instance name, so the id is stable across scans.
func (e Entry) Summary(scheme string) (driver.DeviceSummary, bool) {
	host := e.Host
	if len(e.Addrs) > 0 {
		host = e.Addrs[0]
	}
	if host == "" || e.Port == 0 {
		return driver.DeviceSummary{}, false
	}

	txt := TXTRecords(e.Text)
	name := txt[TXTKeyName]
	if name == "" {
		name = e.Instance
	}
	serial := txt[TXTKeySerial]
	if serial == "" {
		serial = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(e.Instance)).String()
	}

	d := driver.NewDeviceSummary(serial, name, txt[TXTKeyModel],
		scheme+"://"+net.JoinHostPort(host, strconv.Itoa(int(e.Port))))
	d.Multi = txt[TXTKeyMulti] == "1" || txt[TXTKeyMulti] == "true"
	return d, true
}

func mergeAddresses(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range added {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

func removeAddresses(addresses, removed []string) []string {
	drop := make(map[string]bool, len(removed))
	for _, addr := range removed {
		drop[addr] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !drop[addr] {
			result = append(result, addr)
		}
	}
	return result
}
