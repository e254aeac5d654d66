// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"reflect"
	"time"

	ASNber "github.com/OlegPowerC/asn1modsnmp"
)

// makeSNMPPv2Packet constructs SNMPv2c packet (GET/GETNEXT/GETBULK/SET/RESPONSE).
//
// Wraps V2 PDU in Community string + SNMPv2 version wrapper (wire value 1).
// The two int32 parameters ride in the error-status/error-index slots of the
// PDU: nonRepeaters/maxRepetitions for GETBULK (RFC3416 §4.2.3 overlay),
// error-status/error-index for RESPONSE, zeros for everything else.
//
// Internal use for SNMPv2c operations.
func makeSNMPPv2Packet(oidValue []SNMP_Packet_V2_VarBind, requestid int32, community string, SNMPv2_RequestType int, errorStatusRaw int32, errorIndexRaw int32) (SNMPPDU []byte, err error) {
	V2PDU := SNMP_Packet_V2_PDU{requestid, errorStatusRaw, errorIndexRaw, oidValue}
	V2PDU_ASNEncode, V2PDU_ASNEncodeErr := ASNber.Marshal(V2PDU)
	if V2PDU_ASNEncodeErr != nil {
		return nil, V2PDU_ASNEncodeErr
	}

	//Тип составной записи - класс Context-Specified
	//Тег зависит от запроса
	var pmval ASNber.RawValue

	pmval.Class = ASNber.ClassContextSpecific
	pmval.IsCompound = true
	pmval.Tag = SNMPv2_RequestType
	SNMPversion := 1

	//Извлекаем данные (без TAG LEN)
	PureData, ExErr := ASNber.ExtractDataWOTagAndLen(V2PDU_ASNEncode)
	if ExErr != nil {
		return nil, ExErr
	}
	pmval.Bytes = PureData

	TestAns1Struct := SNMP_Packet_V2{SNMPversion, []byte(community), pmval}
	MS, MSerr := ASNber.Marshal(TestAns1Struct)
	if MSerr != nil {
		return nil, MSerr
	}
	return MS, nil
}

// ResolveTargetAddress resolves a target string to an IP address.
//
// Two explicit steps: literal IP parse first, иначе system resolver
// (first returned address). Resolver failures are SNMPResolutionError.
func ResolveTargetAddress(target string) (net.IP, error) {
	if ip := net.ParseIP(target); ip != nil {
		return ip, nil
	}
	addr, err := net.ResolveIPAddr("ip", target)
	if err != nil {
		return nil, SNMPResolutionError{Target: target, Err: err}
	}
	return addr.IP, nil
}

// nextRequestID advances a request id, staying in the non-negative int32 range.
func nextRequestID(reqid int32) int32 {
	return (reqid + 1) & 0x7fffffff
}

// sendUDPRequest performs one UDP exchange: dial, send, single read.
//
// Per-call socket, no retry. timeoutMs <= 0 means wait indefinitely (no
// deadlines are set). Timeouts map to SNMPTimeoutError, остальные сетевые
// ошибки к SNMPTransportError.
func sendUDPRequest(target string, ip net.IP, port int, payload []byte, timeoutMs int, debuglevel uint8) ([]byte, error) {
	var Ds net.Dialer
	Tmms := time.Duration(timeoutMs) * time.Millisecond
	if timeoutMs > 0 {
		Ds.Timeout = Tmms
	}
	DialAddress := net.JoinHostPort(ip.String(), fmt.Sprintf("%d", port))

	conn, dialerr := Ds.Dial("udp", DialAddress)
	if dialerr != nil {
		return nil, SNMPTransportError{Target: target, Err: dialerr}
	}
	defer conn.Close()

	if timeoutMs > 0 {
		if errd := conn.SetWriteDeadline(time.Now().Add(Tmms)); errd != nil {
			return nil, SNMPTransportError{Target: target, Err: errd}
		}
	}
	writedn, errwrite := conn.Write(payload)
	if errwrite != nil {
		return nil, classifyNetError(target, timeoutMs, errwrite)
	}
	if writedn != len(payload) {
		return nil, SNMPTransportError{Target: target, Err: fmt.Errorf("short write: %d of %d bytes", writedn, len(payload))}
	}
	if debuglevel > 199 {
		fmt.Println("request sent to", DialAddress, "size", writedn)
	}
	if debuglevel > 99 {
		fmt.Printf("request packet: %x\n", payload)
	}

	p := make([]byte, SNMP_BUFFERSIZE)
	if timeoutMs > 0 {
		if errd := conn.SetReadDeadline(time.Now().Add(Tmms)); errd != nil {
			return nil, SNMPTransportError{Target: target, Err: errd}
		}
	}
	rlen, errread := conn.Read(p)
	if errread != nil {
		return nil, classifyNetError(target, timeoutMs, errread)
	}
	if debuglevel > 199 {
		fmt.Println("response received from", DialAddress, "size", rlen)
	}
	if debuglevel > 99 {
		fmt.Printf("response packet: %x\n", p[:rlen])
	}
	return p[:rlen], nil
}

// classifyNetError separates read/write timeouts from other socket failures.
func classifyNetError(target string, timeoutMs int, err error) error {
	var nerror net.Error
	if errors.As(err, &nerror) {
		//Ошибка как "net.Error"
		if nerror.Timeout() {
			//Истек таймаут
			return SNMPTimeoutError{Target: target, TimeoutMs: timeoutMs}
		}
	}
	return SNMPTransportError{Target: target, Err: err}
}

// sendSnmpv2Request performs one encode → UDP exchange → decode round trip.
//
// The response must carry the request id of this request, anything else is
// rejected by the parser.
func (SNMPparameters *SNMPv2Session) sendSnmpv2Request(ip net.IP, oidValue []SNMP_Packet_V2_VarBind, requestid int32, ReqType int, nonRepeaters int32, maxRepetitions int32) (SNMPretPacket SNMPv2_DecodePacket, err error) {
	var SNMPpackerv2_FP SNMPv2_DecodePacket

	MS, MSerr := makeSNMPPv2Packet(oidValue, requestid, SNMPparameters.SNMPparams.Community, ReqType, nonRepeaters, maxRepetitions)
	if MSerr != nil {
		return SNMPpackerv2_FP, MSerr
	}

	reply, senderr := sendUDPRequest(SNMPparameters.Address, ip, SNMPparameters.Port, MS, SNMPparameters.SNMPparams.TimeoutMs, SNMPparameters.Debuglevel)
	if senderr != nil {
		return SNMPpackerv2_FP, senderr
	}

	return receiverV2parser(reply, true, requestid, SNMPparameters.Debuglevel)
}

// snmpv2_GetSet executes SNMPv2c GET/GETNEXT/GETBULK/SET requests.
//
// Universal single-exchange entry point. Request id is drawn fresh for every
// call. Converts SET values to ASN.1, handles GetBulk parameters.
//
// Returns decoded VarBinds from response PDU.
func (SNMPparameters *SNMPv2Session) snmpv2_GetSet(ip net.IP, oidValue []SNMP_Packet_V2_Decoded_VarBind, Request_Type int) (SNMPretPacket []SNMP_Packet_V2_Decoded_VarBind, err error) {
	var ReturnVal []SNMP_Packet_V2_Decoded_VarBind

	//Идентификатор запроса свой на каждый вызов
	LocalRequestId := rand.Int31()

	nonRepeaters, maxRepetitions := int32(0), int32(0)
	if Request_Type == SNMPv2_REQUEST_GETBULK {
		nonRepeaters = 0
		maxRepetitions = SNMPparameters.SNMPparams.MaxRepetitions
	}

	OidVarConverted := make([]SNMP_Packet_V2_VarBind, 0)
	for _, elm := range oidValue {
		OidVarConverted = append(OidVarConverted, SNMP_Packet_V2_VarBind{elm.RSnmpOID, Convert_setvar_toasn1raw(elm.RSnmpVar)})
	}

	rts, complexerr := SNMPparameters.sendSnmpv2Request(ip, OidVarConverted, LocalRequestId, Request_Type, nonRepeaters, maxRepetitions)
	if complexerr != nil {
		return ReturnVal, complexerr
	}

	ReturnVal = rts.V2PDU.VarBinds
	return ReturnVal, nil
}

// snmpv2_Walk performs complete SNMPv2c walk of MIB subtree.
//
// GETNEXT or GETBULK pagination seeded from the last returned OID. Stops
// cleanly on subtree exit, exception VarBind (endOfMibView) or iteration cap.
// All-or-nothing: любая ошибка отбрасывает уже собранные данные.
func (SNMPparameters *SNMPv2Session) snmpv2_Walk(ip net.IP, Oid []int, ReqType int) (SNMPData []SNMP_Packet_V2_Decoded_VarBind, err error) {
	var RetVar []SNMP_Packet_V2_Decoded_VarBind
	LocalRequestId := rand.Int31()
	OidVarConverted := []SNMP_Packet_V2_VarBind{{Oid, ASNber.NullRawValue}}

	nonRepeaters, maxRepetitions := int32(0), int32(0)
	if ReqType == SNMPv2_REQUEST_GETBULK {
		maxRepetitions = SNMPparameters.SNMPparams.MaxRepetitions
	}

	maxiter := SNMPparameters.SNMPparams.MaxWalkIterations
	for a := 0; a < maxiter; a++ {
		rts, SNMPGetErr := SNMPparameters.sendSnmpv2Request(ip, OidVarConverted, LocalRequestId, ReqType, nonRepeaters, maxRepetitions)
		if SNMPGetErr != nil {
			return nil, SNMPGetErr
		}
		SNMPGet := rts.V2PDU.VarBinds
		//Обходим результат и проверяем не вышли ли из ветки
		for _, val := range SNMPGet {
			//Исключение (endOfMibView) завершает обход
			if val.RSnmpVar.ValueClass == ASNber.ClassContextSpecific {
				return RetVar, nil
			}
			//Проверяем не зациклились ли
			if reflect.DeepEqual(OidVarConverted[0].RSnmpOID, val.RSnmpOID) {
				return nil, SNMPWalkLoopError{Oid: val.RSnmpOID}
			}
			if InSubTreeCheck(Oid, val.RSnmpOID) == false {
				return RetVar, nil
			}
			RetVar = append(RetVar, val)
		}
		if len(SNMPGet) > 0 {
			OidVarConverted[0].RSnmpOID = SNMPGet[len(SNMPGet)-1].RSnmpOID
		} else {
			return RetVar, nil
		}
		LocalRequestId = nextRequestID(LocalRequestId)
	}
	return RetVar, nil
}

// snmpv2_Walk_WChan performs streaming SNMPv2c walk via channel.
//
// Same traversal as snmpv2_Walk. Every binding is sent as ChanDataWErr with
// ValidData set; a terminal error is sent as a final record with Error set;
// clean termination just closes the channel.
func (SNMPparameters *SNMPv2Session) snmpv2_Walk_WChan(ip net.IP, Oid []int, ReqType int, CData chan<- ChanDataWErr) {
	var ChanData ChanDataWErr
	LocalRequestId := rand.Int31()
	OidVarConverted := []SNMP_Packet_V2_VarBind{{Oid, ASNber.NullRawValue}}

	nonRepeaters, maxRepetitions := int32(0), int32(0)
	if ReqType == SNMPv2_REQUEST_GETBULK {
		maxRepetitions = SNMPparameters.SNMPparams.MaxRepetitions
	}

	maxiter := SNMPparameters.SNMPparams.MaxWalkIterations
	for a := 0; a < maxiter; a++ {
		rts, SNMPGetErr := SNMPparameters.sendSnmpv2Request(ip, OidVarConverted, LocalRequestId, ReqType, nonRepeaters, maxRepetitions)
		if SNMPGetErr != nil {
			ChanData = ChanDataWErr{Error: SNMPGetErr}
			CData <- ChanData
			close(CData)
			return
		}
		SNMPGet := rts.V2PDU.VarBinds
		//Обходим результат и проверяем не вышли ли из ветки
		for _, val := range SNMPGet {
			//Исключение (endOfMibView) завершает обход
			if val.RSnmpVar.ValueClass == ASNber.ClassContextSpecific {
				close(CData)
				return
			}
			//Проверяем не зациклились ли
			if reflect.DeepEqual(OidVarConverted[0].RSnmpOID, val.RSnmpOID) {
				ChanData = ChanDataWErr{Error: SNMPWalkLoopError{Oid: val.RSnmpOID}}
				CData <- ChanData
				close(CData)
				return
			}
			if InSubTreeCheck(Oid, val.RSnmpOID) == false {
				close(CData)
				return
			}
			ChanData = ChanDataWErr{Data: val, ValidData: true}
			CData <- ChanData
		}
		if len(SNMPGet) > 0 {
			OidVarConverted[0].RSnmpOID = SNMPGet[len(SNMPGet)-1].RSnmpOID
		} else {
			close(CData)
			return
		}
		LocalRequestId = nextRequestID(LocalRequestId)
	}
	close(CData)
}
