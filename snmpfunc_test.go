//go:build !integration

// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	ASNber "github.com/OlegPowerC/asn1modsnmp"
)

type mockAgentEntry struct {
	Oid []int
	Var SNMPVar
}

// mockAgent - мини-агент на локальном UDP порту для тестов без оборудования.
// Отвечает на GET/GETNEXT/GETBULK/SET по таблице entries, отсортированной
// лексикографически. Поведение настраивается:
//
//	silent      - не отвечать вообще (тесты таймаутов)
//	answerLimit - отвечать только на первые N запросов
//	echoNext    - GETNEXT возвращает запрошенный OID без продвижения
//	setStatus   - SET отклоняется с этим error-status
type mockAgent struct {
	conn        *net.UDPConn
	entries     []mockAgentEntry
	silent      bool
	answerLimit int32
	echoNext    bool
	setStatus   int32

	requests atomic.Int32
	mu       sync.Mutex
	lastSet  []SNMP_Packet_V2_VarBind
	closed   chan struct{}
}

func startMockAgent(t *testing.T, entries []mockAgentEntry) *mockAgent {
	t.Helper()
	conn, lerr := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if lerr != nil {
		t.Fatal(lerr)
	}
	slices.SortFunc(entries, func(a, b mockAgentEntry) int {
		return slices.Compare(a.Oid, b.Oid)
	})
	agent := &mockAgent{conn: conn, entries: entries, closed: make(chan struct{})}
	go agent.serve()
	t.Cleanup(agent.stop)
	return agent
}

func (agent *mockAgent) stop() {
	agent.conn.Close()
	<-agent.closed
}

func (agent *mockAgent) port() int {
	return agent.conn.LocalAddr().(*net.UDPAddr).Port
}

func (agent *mockAgent) serve() {
	defer close(agent.closed)
	buf := make([]byte, SNMP_BUFFERSIZE)
	for {
		rlen, raddr, rerr := agent.conn.ReadFromUDP(buf)
		if rerr != nil {
			return
		}
		served := agent.requests.Add(1)
		if agent.silent {
			continue
		}
		if agent.answerLimit > 0 && served > agent.answerLimit {
			continue
		}
		if reply := agent.handle(buf[:rlen]); reply != nil {
			agent.conn.WriteToUDP(reply, raddr)
		}
	}
}

type mockRequest struct {
	ReqType   int
	Community string
	PDU       SNMP_Packet_V2_PDU
}

func parseMockRequest(packet []byte) (mockRequest, error) {
	var vs SNMP_Packet_V2
	var req mockRequest
	if _, umerr := ASNber.Unmarshal(packet, &vs); umerr != nil {
		return req, umerr
	}
	if len(vs.V2VarBind.FullBytes) == 0 {
		return req, errors.New("empty PDU")
	}
	req.ReqType = vs.V2VarBind.Tag
	req.Community = string(vs.V2CcommunityString)
	//Тот же прием что и у приемника: PDU перечитывается как SEQUENCE
	vs.V2VarBind.FullBytes[0] = 0x30
	if _, umerr := ASNber.Unmarshal(vs.V2VarBind.FullBytes, &req.PDU); umerr != nil {
		return req, umerr
	}
	return req, nil
}

// lookup отвечает на GET: точное совпадение или noSuchObject
func (agent *mockAgent) lookup(oid []int) SNMP_Packet_V2_VarBind {
	for _, entry := range agent.entries {
		if slices.Equal(entry.Oid, oid) {
			return SNMP_Packet_V2_VarBind{RSnmpOID: entry.Oid, RSnmpVar: Convert_setvar_toasn1raw(entry.Var)}
		}
	}
	return SNMP_Packet_V2_VarBind{RSnmpOID: oid, RSnmpVar: testRawValue(ASNber.ClassContextSpecific, tagERR_noSuchObject, nil)}
}

// next отвечает на GETNEXT: первая строго большая запись или endOfMibView
func (agent *mockAgent) next(oid []int) SNMP_Packet_V2_VarBind {
	for _, entry := range agent.entries {
		if slices.Compare(entry.Oid, oid) > 0 {
			return SNMP_Packet_V2_VarBind{RSnmpOID: entry.Oid, RSnmpVar: Convert_setvar_toasn1raw(entry.Var)}
		}
	}
	return SNMP_Packet_V2_VarBind{RSnmpOID: oid, RSnmpVar: testRawValue(ASNber.ClassContextSpecific, tagERR_EndOfMib, nil)}
}

func (agent *mockAgent) handle(packet []byte) []byte {
	req, perr := parseMockRequest(packet)
	if perr != nil {
		return nil
	}

	var out []SNMP_Packet_V2_VarBind
	status, index := int32(0), int32(0)

	switch req.ReqType {
	case SNMPv2_REQUEST_GET:
		for _, vb := range req.PDU.VarBinds {
			out = append(out, agent.lookup(vb.RSnmpOID))
		}
	case SNMPv2_REQUEST_GETNEXT:
		for _, vb := range req.PDU.VarBinds {
			if agent.echoNext {
				out = append(out, SNMP_Packet_V2_VarBind{RSnmpOID: vb.RSnmpOID, RSnmpVar: Convert_setvar_toasn1raw(SetSNMPVar_Int(1))})
				continue
			}
			out = append(out, agent.next(vb.RSnmpOID))
		}
	case SNMPv2_REQUEST_GETBULK:
		//max-repetitions приезжает в слоте error-index (RFC3416 §4.2.3)
		maxRep := int(req.PDU.ErrorIndexRaw)
		if maxRep <= 0 {
			maxRep = 1
		}
		for _, vb := range req.PDU.VarBinds {
			cur := vb.RSnmpOID
			for n := 0; n < maxRep; n++ {
				nextvb := agent.next(cur)
				out = append(out, nextvb)
				if nextvb.RSnmpVar.Class == ASNber.ClassContextSpecific {
					break
				}
				cur = nextvb.RSnmpOID
			}
		}
	case SNMPv2_REQUEST_SET:
		out = req.PDU.VarBinds
		if agent.setStatus != 0 {
			status, index = agent.setStatus, 1
		} else {
			agent.rememberSet(req.PDU.VarBinds)
		}
	default:
		return nil
	}

	reply, mkerr := makeSNMPPv2Packet(out, req.PDU.RequestID, req.Community, SNMPv2_REQUEST_RESPONSE, status, index)
	if mkerr != nil {
		return nil
	}
	return reply
}

func (agent *mockAgent) rememberSet(vbs []SNMP_Packet_V2_VarBind) {
	agent.mu.Lock()
	defer agent.mu.Unlock()
	agent.lastSet = append([]SNMP_Packet_V2_VarBind{}, vbs...)
}

func (agent *mockAgent) lastSetValue() []SNMP_Packet_V2_VarBind {
	agent.mu.Lock()
	defer agent.mu.Unlock()
	return agent.lastSet
}

func newTestSession(t *testing.T, agent *mockAgent, tweak func(*NetworkDevice)) *SNMPv2Session {
	t.Helper()
	var Dev NetworkDevice
	Dev.Address = "127.0.0.1"
	Dev.Port = agent.port()
	Dev.SNMPparameters.Community = "public"
	Dev.SNMPparameters.TimeoutMs = 2000
	if tweak != nil {
		tweak(&Dev)
	}
	Ssess, SsessError := SNMP_Init(Dev)
	if SsessError != nil {
		t.Fatal(SsessError)
	}
	return Ssess
}

func sysEntries() []mockAgentEntry {
	return []mockAgentEntry{
		{Oid: []int{1, 3, 6, 1, 2, 1, 1, 3, 0}, Var: SetSNMPVar_TimeTicks(12345)},
		{Oid: []int{1, 3, 6, 1, 2, 1, 1, 5, 0}, Var: SetSNMPVar_OctetString("core-sw")},
	}
}

// ifDescr плюс запись за пределами поддерева
func ifDescrEntries() []mockAgentEntry {
	return []mockAgentEntry{
		{Oid: []int{1, 3, 6, 1, 2, 1, 2, 2, 1, 2, 1}, Var: SetSNMPVar_OctetString("Gi0/1")},
		{Oid: []int{1, 3, 6, 1, 2, 1, 2, 2, 1, 2, 2}, Var: SetSNMPVar_OctetString("Gi0/2")},
		{Oid: []int{1, 3, 6, 1, 2, 1, 2, 2, 1, 2, 3}, Var: SetSNMPVar_OctetString("Gi0/3")},
		{Oid: []int{1, 3, 6, 1, 2, 1, 2, 3, 0}, Var: SetSNMPVar_Int(1)},
	}
}

func TestSNMP_InitDefaults(t *testing.T) {
	var Dev NetworkDevice
	Dev.Address = "10.0.0.1"
	Dev.SNMPparameters.Community = "public"

	Ssess, SsessError := SNMP_Init(Dev)
	if SsessError != nil {
		t.Fatal(SsessError)
	}
	if Ssess.Port != 161 {
		t.Errorf("Port = %d; want 161", Ssess.Port)
	}
	if Ssess.SNMPparams.TimeoutMs != 3000 {
		t.Errorf("TimeoutMs = %d; want 3000", Ssess.SNMPparams.TimeoutMs)
	}
	if Ssess.SNMPparams.MaxRepetitions != 25 {
		t.Errorf("MaxRepetitions = %d; want 25", Ssess.SNMPparams.MaxRepetitions)
	}
	if Ssess.SNMPparams.MaxWalkIterations != SNMP_MAXIMUMWALK {
		t.Errorf("MaxWalkIterations = %d; want %d", Ssess.SNMPparams.MaxWalkIterations, SNMP_MAXIMUMWALK)
	}

	//Отрицательный таймаут это "ждать без ограничения", он сохраняется
	Dev.SNMPparameters.TimeoutMs = -1
	Dev.SNMPparameters.MaxRepetitions = 50
	Dev.SNMPparameters.MaxWalkIterations = 77
	Ssess2, SsessError2 := SNMP_Init(Dev)
	if SsessError2 != nil {
		t.Fatal(SsessError2)
	}
	if Ssess2.SNMPparams.TimeoutMs != -1 {
		t.Errorf("TimeoutMs = %d; want -1", Ssess2.SNMPparams.TimeoutMs)
	}
	if Ssess2.SNMPparams.MaxRepetitions != 50 {
		t.Errorf("MaxRepetitions = %d; want 50", Ssess2.SNMPparams.MaxRepetitions)
	}
	if Ssess2.SNMPparams.MaxWalkIterations != 77 {
		t.Errorf("MaxWalkIterations = %d; want 77", Ssess2.SNMPparams.MaxWalkIterations)
	}

	//Значения выше потолка повторений приводятся к умолчанию
	Dev.SNMPparameters.MaxRepetitions = 200
	Ssess3, SsessError3 := SNMP_Init(Dev)
	if SsessError3 != nil {
		t.Fatal(SsessError3)
	}
	if Ssess3.SNMPparams.MaxRepetitions != 25 {
		t.Errorf("MaxRepetitions = %d; want 25", Ssess3.SNMPparams.MaxRepetitions)
	}
}

func TestSNMP_InitRejects(t *testing.T) {
	tests := []struct {
		name string
		dev  NetworkDevice
	}{
		{name: "empty address", dev: NetworkDevice{Port: 161, SNMPparameters: SNMPUserParameters{Community: "public"}}},
		{name: "port above range", dev: NetworkDevice{Address: "10.0.0.1", Port: 70000, SNMPparameters: SNMPUserParameters{Community: "public"}}},
		{name: "negative port", dev: NetworkDevice{Address: "10.0.0.1", Port: -1, SNMPparameters: SNMPUserParameters{Community: "public"}}},
		{name: "empty community", dev: NetworkDevice{Address: "10.0.0.1", Port: 161}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, SsessError := SNMP_Init(tt.dev); SsessError == nil {
				t.Error("bad device parameters accepted")
			}
		})
	}
}

func TestResolveTargetAddress(t *testing.T) {
	ip, rerr := ResolveTargetAddress("127.0.0.1")
	if rerr != nil {
		t.Fatal(rerr)
	}
	if !ip.Equal(net.IPv4(127, 0, 0, 1)) {
		t.Errorf("ResolveTargetAddress(127.0.0.1) = %v", ip)
	}

	ip, rerr = ResolveTargetAddress("localhost")
	if rerr != nil {
		t.Fatal(rerr)
	}
	if !ip.IsLoopback() {
		t.Errorf("ResolveTargetAddress(localhost) = %v; want loopback", ip)
	}

	//RFC2606: .invalid никогда не резолвится
	_, rerr = ResolveTargetAddress("no-such-host.invalid")
	if rerr == nil {
		t.Fatal("unresolvable name accepted")
	}
	var resErr SNMPResolutionError
	if !errors.As(rerr, &resErr) {
		t.Fatalf("error type = %T; want SNMPResolutionError", rerr)
	}
	if resErr.Target != "no-such-host.invalid" {
		t.Errorf("Target = %q", resErr.Target)
	}
	if resErr.Unwrap() == nil {
		t.Error("resolver cause lost")
	}
}

func TestInSubTreeCheck(t *testing.T) {
	tests := []struct {
		name    string
		main    []int
		current []int
		want    bool
	}{
		{name: "child", main: []int{1, 3, 6, 1, 2, 1, 2}, current: []int{1, 3, 6, 1, 2, 1, 2, 2, 1, 2, 1}, want: true},
		{name: "root itself", main: []int{1, 3, 6, 1, 2, 1, 2}, current: []int{1, 3, 6, 1, 2, 1, 2}, want: true},
		{name: "sibling", main: []int{1, 3, 6, 1, 2, 1, 2}, current: []int{1, 3, 6, 1, 2, 1, 3, 1}, want: false},
		{name: "shorter than root", main: []int{1, 3, 6, 1, 2, 1, 2}, current: []int{1, 3, 6}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InSubTreeCheck(tt.main, tt.current); got != tt.want {
				t.Errorf("InSubTreeCheck(%v, %v) = %v; want %v", tt.main, tt.current, got, tt.want)
			}
		})
	}
}

func TestSNMPErrorIntToText(t *testing.T) {
	if name := SNMPErrorIntToText(2); name != "noSuchName" {
		t.Errorf("SNMPErrorIntToText(2) = %q; want noSuchName", name)
	}
	if name := SNMPErrorIntToText(17); name != "notWritable" {
		t.Errorf("SNMPErrorIntToText(17) = %q; want notWritable", name)
	}
	if name := SNMPErrorIntToText(42); name != "error-status: 42" {
		t.Errorf("SNMPErrorIntToText(42) = %q", name)
	}
}

func TestSNMP_Get(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	data, geterr := Ssess.SNMP_Get([]string{"1.3.6.1.2.1.1.3.0"})
	if geterr != nil {
		t.Fatal(geterr)
	}
	if len(data) != 1 {
		t.Fatalf("got %d VarBinds; want 1", len(data))
	}
	if data[0].OidString() != "1.3.6.1.2.1.1.3.0" {
		t.Errorf("OID = %s", data[0].OidString())
	}
	if data[0].ValueString() != "12345" {
		t.Errorf("value = %q; want %q", data[0].ValueString(), "12345")
	}
	if data[0].TypeString() != "TIMETICKS" {
		t.Errorf("type = %q; want TIMETICKS", data[0].TypeString())
	}
}

func TestSNMP_GetMultiOid(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	//Неизвестный OID приходит как noSuchObject, остальные привязки с данными
	data, geterr := Ssess.SNMP_Get([]string{"1.3.6.1.2.1.1.5.0", "1.3.6.1.9.9.9.0", "1.3.6.1.2.1.1.3.0"})
	if geterr != nil {
		t.Fatal(geterr)
	}
	if len(data) != 3 {
		t.Fatalf("got %d VarBinds; want 3", len(data))
	}
	if data[0].ValueString() != "core-sw" {
		t.Errorf("VarBind 0 = %q", data[0].ValueString())
	}
	if data[1].ValueString() != "noSuchObject" {
		t.Errorf("VarBind 1 = %q; want noSuchObject", data[1].ValueString())
	}
	if data[2].ValueString() != "12345" {
		t.Errorf("VarBind 2 = %q", data[2].ValueString())
	}
}

func TestSNMP_GetInvalidOidIsLocal(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	_, geterr := Ssess.SNMP_Get([]string{"not.an.oid"})
	if geterr == nil {
		t.Fatal("malformed OID accepted")
	}
	var oidErr SNMPInvalidOidError
	if !errors.As(geterr, &oidErr) {
		t.Fatalf("error type = %T; want SNMPInvalidOidError", geterr)
	}
	//До сети дело дойти не должно
	if agent.requests.Load() != 0 {
		t.Errorf("agent saw %d requests; want 0", agent.requests.Load())
	}
}

func TestSNMP_GetNext(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	data, geterr := Ssess.SNMP_GetNext([]string{"1.3.6.1.2.1.1.3.0"})
	if geterr != nil {
		t.Fatal(geterr)
	}
	if len(data) != 1 {
		t.Fatalf("got %d VarBinds; want 1", len(data))
	}
	if data[0].OidString() != "1.3.6.1.2.1.1.5.0" {
		t.Errorf("OID = %s; want the following one", data[0].OidString())
	}
	if data[0].ValueString() != "core-sw" {
		t.Errorf("value = %q", data[0].ValueString())
	}

	//За последней записью агент отдает endOfMibView
	data, geterr = Ssess.SNMP_GetNext([]string{"1.3.6.1.2.1.1.5.0"})
	if geterr != nil {
		t.Fatal(geterr)
	}
	if data[0].ValueString() != "endOfMibView" {
		t.Errorf("value = %q; want endOfMibView", data[0].ValueString())
	}
}

func TestSNMP_GetTimeout(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	agent.silent = true
	Ssess := newTestSession(t, agent, func(dev *NetworkDevice) {
		dev.SNMPparameters.TimeoutMs = 200
	})

	started := time.Now()
	_, geterr := Ssess.SNMP_Get([]string{"1.3.6.1.2.1.1.3.0"})
	elapsed := time.Since(started)
	if geterr == nil {
		t.Fatal("silent agent did not produce an error")
	}
	var toErr SNMPTimeoutError
	if !errors.As(geterr, &toErr) {
		t.Fatalf("error type = %T; want SNMPTimeoutError", geterr)
	}
	if toErr.TimeoutMs != 200 {
		t.Errorf("TimeoutMs = %d; want 200", toErr.TimeoutMs)
	}
	if elapsed < 200*time.Millisecond {
		t.Errorf("returned after %v; before the deadline", elapsed)
	}
}

func TestSNMP_Set(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	data, seterr := Ssess.SNMP_Set("1.3.6.1.2.1.1.5.0", "edge-sw-07", 's')
	if seterr != nil {
		t.Fatal(seterr)
	}
	if len(data) != 1 || data[0].ValueString() != "edge-sw-07" {
		t.Fatalf("echo = %v", data)
	}

	stored := agent.lastSetValue()
	if len(stored) != 1 {
		t.Fatalf("agent stored %d VarBinds; want 1", len(stored))
	}
	if Convert_OID_IntArrayToString_RAW(stored[0].RSnmpOID) != "1.3.6.1.2.1.1.5.0" {
		t.Errorf("stored OID = %v", stored[0].RSnmpOID)
	}
	if string(stored[0].RSnmpVar.Bytes) != "edge-sw-07" {
		t.Errorf("stored value = %q", stored[0].RSnmpVar.Bytes)
	}
}

func TestSNMP_SetVar(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	data, seterr := Ssess.SNMP_SetVar("1.3.6.1.2.1.2.2.1.7.1", SetSNMPVar_Int(1))
	if seterr != nil {
		t.Fatal(seterr)
	}
	if len(data) != 1 || data[0].ValueString() != "1" {
		t.Fatalf("echo = %v", data)
	}
}

func TestSNMP_SetInvalidValueIsLocal(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	Ssess := newTestSession(t, agent, nil)

	_, seterr := Ssess.SNMP_Set("1.3.6.1.2.1.1.5.0", "notanumber", 'i')
	if seterr == nil {
		t.Fatal("bad value accepted")
	}
	var fmtErr SNMPValueFormatError
	if !errors.As(seterr, &fmtErr) {
		t.Fatalf("error type = %T; want SNMPValueFormatError", seterr)
	}
	if agent.requests.Load() != 0 {
		t.Errorf("agent saw %d requests; want 0", agent.requests.Load())
	}
}

func TestSNMP_SetProtocolError(t *testing.T) {
	agent := startMockAgent(t, sysEntries())
	agent.setStatus = sNMP_ErrNotWritable
	Ssess := newTestSession(t, agent, nil)

	data, seterr := Ssess.SNMP_Set("1.3.6.1.2.1.1.5.0", "edge-sw-07", 's')
	if seterr == nil {
		t.Fatal("rejected SET did not produce an error")
	}
	var protoErr SNMPProtocolError
	if !errors.As(seterr, &protoErr) {
		t.Fatalf("error type = %T; want SNMPProtocolError", seterr)
	}
	if protoErr.ErrorStatusRaw != sNMP_ErrNotWritable {
		t.Errorf("status = %d; want %d", protoErr.ErrorStatusRaw, sNMP_ErrNotWritable)
	}
	if len(data) != 0 {
		t.Errorf("got %d VarBinds alongside the error", len(data))
	}
}

func TestSNMP_Walk(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	Ssess := newTestSession(t, agent, nil)

	data, walkerr := Ssess.SNMP_Walk("1.3.6.1.2.1.2.2.1.2")
	if walkerr != nil {
		t.Fatal(walkerr)
	}
	want := []string{"Gi0/1", "Gi0/2", "Gi0/3"}
	if len(data) != len(want) {
		t.Fatalf("got %d VarBinds; want %d", len(data), len(want))
	}
	for i, wantval := range want {
		if data[i].ValueString() != wantval {
			t.Errorf("VarBind %d = %q; want %q", i, data[i].ValueString(), wantval)
		}
		if !InSubTreeCheck([]int{1, 3, 6, 1, 2, 1, 2, 2, 1, 2}, data[i].RSnmpOID) {
			t.Errorf("VarBind %d OID %s outside the subtree", i, data[i].OidString())
		}
	}
}

func TestSNMP_WalkEndOfMib(t *testing.T) {
	//Поддерево в самом конце MIB: обход завершает endOfMibView
	agent := startMockAgent(t, ifDescrEntries()[:3])
	Ssess := newTestSession(t, agent, nil)

	data, walkerr := Ssess.SNMP_Walk("1.3.6.1.2.1.2.2.1.2")
	if walkerr != nil {
		t.Fatal(walkerr)
	}
	if len(data) != 3 {
		t.Fatalf("got %d VarBinds; want 3", len(data))
	}
}

func TestSNMP_WalkIterationCap(t *testing.T) {
	entries := make([]mockAgentEntry, 0, 10)
	for n := 1; n <= 10; n++ {
		entries = append(entries, mockAgentEntry{Oid: []int{1, 3, 6, 1, 2, 1, 99, n}, Var: SetSNMPVar_Int(int32(n))})
	}
	agent := startMockAgent(t, entries)
	Ssess := newTestSession(t, agent, func(dev *NetworkDevice) {
		dev.SNMPparameters.MaxWalkIterations = 5
	})

	//Потолок итераций: обход отдает собранное без ошибки
	data, walkerr := Ssess.SNMP_Walk("1.3.6.1.2.1.99")
	if walkerr != nil {
		t.Fatal(walkerr)
	}
	if len(data) != 5 {
		t.Errorf("got %d VarBinds; want 5 (one per GETNEXT round)", len(data))
	}
}

func TestSNMP_WalkLoopDetection(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	agent.echoNext = true
	Ssess := newTestSession(t, agent, nil)

	data, walkerr := Ssess.SNMP_Walk("1.3.6.1.2.1.2.2.1.2")
	if walkerr == nil {
		t.Fatal("agent without progress did not produce an error")
	}
	var loopErr SNMPWalkLoopError
	if !errors.As(walkerr, &loopErr) {
		t.Fatalf("error type = %T; want SNMPWalkLoopError", walkerr)
	}
	if Convert_OID_IntArrayToString_RAW(loopErr.Oid) != "1.3.6.1.2.1.2.2.1.2" {
		t.Errorf("loop OID = %v", loopErr.Oid)
	}
	if data != nil {
		t.Errorf("partial data survived the error: %v", data)
	}
}

func TestSNMP_WalkTimeoutDropsPartials(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	agent.answerLimit = 1
	Ssess := newTestSession(t, agent, func(dev *NetworkDevice) {
		dev.SNMPparameters.TimeoutMs = 200
	})

	data, walkerr := Ssess.SNMP_Walk("1.3.6.1.2.1.2.2.1.2")
	if walkerr == nil {
		t.Fatal("dead agent did not produce an error")
	}
	var toErr SNMPTimeoutError
	if !errors.As(walkerr, &toErr) {
		t.Fatalf("error type = %T; want SNMPTimeoutError", walkerr)
	}
	//Первая пачка уже была получена, но результат все равно пуст
	if data != nil {
		t.Errorf("partial data survived the error: %v", data)
	}
}

func TestSNMP_BulkWalk(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	Ssess := newTestSession(t, agent, nil)

	data, walkerr := Ssess.SNMP_BulkWalk("1.3.6.1.2.1.2.2.1.2")
	if walkerr != nil {
		t.Fatal(walkerr)
	}
	want := []string{"Gi0/1", "Gi0/2", "Gi0/3"}
	if len(data) != len(want) {
		t.Fatalf("got %d VarBinds; want %d", len(data), len(want))
	}
	for i, wantval := range want {
		if data[i].ValueString() != wantval {
			t.Errorf("VarBind %d = %q; want %q", i, data[i].ValueString(), wantval)
		}
	}
	//GETBULK забирает поддерево за один обмен
	if agent.requests.Load() != 1 {
		t.Errorf("agent saw %d requests; want 1", agent.requests.Load())
	}
}

func TestSNMP_Walk_WChan(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	Ssess := newTestSession(t, agent, nil)

	CData := make(chan ChanDataWErr, 100)
	go Ssess.SNMP_Walk_WChan("1.3.6.1.2.1.2.2.1.2", CData)

	var values []string
	for record := range CData {
		if record.Error != nil {
			t.Fatal(record.Error)
		}
		if !record.ValidData {
			t.Error("record without data and without error")
			continue
		}
		values = append(values, record.Data.ValueString())
	}
	if !slices.Equal(values, []string{"Gi0/1", "Gi0/2", "Gi0/3"}) {
		t.Errorf("streamed values = %v", values)
	}
}

func TestSNMP_BulkWalk_WChan(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	Ssess := newTestSession(t, agent, nil)

	CData := make(chan ChanDataWErr, 100)
	go Ssess.SNMP_BulkWalk_WChan("1.3.6.1.2.1.2.2.1.2", CData)

	var values []string
	for record := range CData {
		if record.Error != nil {
			t.Fatal(record.Error)
		}
		if record.ValidData {
			values = append(values, record.Data.ValueString())
		}
	}
	if !slices.Equal(values, []string{"Gi0/1", "Gi0/2", "Gi0/3"}) {
		t.Errorf("streamed values = %v", values)
	}
}

func TestSNMP_Walk_WChanError(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	agent.silent = true
	Ssess := newTestSession(t, agent, func(dev *NetworkDevice) {
		dev.SNMPparameters.TimeoutMs = 200
	})

	CData := make(chan ChanDataWErr, 100)
	go Ssess.SNMP_Walk_WChan("1.3.6.1.2.1.2.2.1.2", CData)

	//Ровно одна финальная запись с ошибкой, затем канал закрывается
	var records []ChanDataWErr
	for record := range CData {
		records = append(records, record)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records; want 1", len(records))
	}
	if records[0].Error == nil || records[0].ValidData {
		t.Errorf("final record = %+v; want terminal error", records[0])
	}
	var toErr SNMPTimeoutError
	if !errors.As(records[0].Error, &toErr) {
		t.Errorf("error type = %T; want SNMPTimeoutError", records[0].Error)
	}
}

func TestSNMP_Walk_WChanBadOid(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	Ssess := newTestSession(t, agent, nil)

	CData := make(chan ChanDataWErr, 10)
	go Ssess.SNMP_Walk_WChan("not.an.oid", CData)

	var records []ChanDataWErr
	for record := range CData {
		records = append(records, record)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records; want 1", len(records))
	}
	var oidErr SNMPInvalidOidError
	if !errors.As(records[0].Error, &oidErr) {
		t.Errorf("error type = %T; want SNMPInvalidOidError", records[0].Error)
	}
	if agent.requests.Load() != 0 {
		t.Errorf("agent saw %d requests; want 0", agent.requests.Load())
	}
}

func TestSNMP_GetConcurrent(t *testing.T) {
	agent := startMockAgent(t, ifDescrEntries())
	Ssess := newTestSession(t, agent, nil)

	//Одна сессия из нескольких горутин: у каждого вызова свой сокет
	var wg sync.WaitGroup
	errCh := make(chan error, 20)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 5; n++ {
				data, geterr := Ssess.SNMP_Get([]string{"1.3.6.1.2.1.2.2.1.2.1"})
				if geterr != nil {
					errCh <- geterr
					return
				}
				if len(data) != 1 || data[0].ValueString() != "Gi0/1" {
					errCh <- fmt.Errorf("unexpected result: %v", data)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for geterr := range errCh {
		t.Error(geterr)
	}
}
