// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

import (
	ASNber "github.com/OlegPowerC/asn1modsnmp"
)

// SNMPErrorNames maps error-status codes (RFC3416 §4.1.2.1) and per-VarBind
// exception tags to their standard names.
var SNMPErrorNames = map[int]string{
	sNMP_ErrNoError:             "noError",
	sNMP_ErrTooBig:              "tooBig",
	sNMP_ErrNoSuchName:          "noSuchName",
	sNMP_ErrBadValue:            "badValue",
	sNMP_ErrReadOnly:            "readOnly",
	sNMP_ErrGenErr:              "genErr",
	sNMP_ErrNoAccess:            "noAccess",
	sNMP_ErrWrongType:           "wrongType",
	sNMP_ErrWrongLength:         "wrongLength",
	sNMP_ErrWrongEncoding:       "wrongEncoding",
	sNMP_ErrWrongValue:          "wrongValue",
	sNMP_ErrNoCreation:          "noCreation",
	sNMP_ErrInconsistentValue:   "inconsistentValue",
	sNMP_ErrResourceUnavailable: "resourceUnavailable",
	sNMP_ErrCommitFailed:        "commitFailed",
	sNMP_ErrUndoFailed:          "undoFailed",
	sNMP_ErrAuthorizationError:  "authorizationError",
	sNMP_ErrNotWritable:         "notWritable",
	sNMP_ErrInconsistentName:    "inconsistentName",

	//Error in VarBind
	tagandclassERR_noSuchObject:   "noSuchObject",
	tagandclassERR_noSuchInstance: "noSuchInstance",
	tagandclassERR_EndOfMib:       "endOfMibView",
}

type SNMPv2_DecodePacket struct {
	Version   int
	Community []byte
	V2PDU     SNMP_Packet_V2_decoded_PDU
}

type SNMP_Packet_V2_PDU struct {
	RequestID      int32
	ErrorStatusRaw int32
	ErrorIndexRaw  int32
	VarBinds       []SNMP_Packet_V2_VarBind
}

// SNMP_Packet_V2_decoded_PDU represents decoded SNMPv2 PDU (RFC3416 §4.1 compliant).
//
// **Unified structure** for all v2c responses: GET/GETNEXT/SET/GETBULK.
// Exact field mapping from BER-decoded PDU: request-id, error-status,
// error-index, varbind-list.
//
// Fields:
//
//	RequestID      - identifier [0..2147483647], RESPONSE matches the request
//	ErrorStatusRaw - Raw SNMP errorStatus (0=noError, 2=noSuchName, 17=notWritable)
//	ErrorIndexRaw  - 1-based index of the failed VarBind (0=no errors)
//	VarBinds       - Response data (same length/order как input)
//
// **Wireshark field mapping (100% точное соответствие):**
// ```
// snmp.request-id     → RequestID
// snmp.error-status   → ErrorStatusRaw
// snmp.error-index    → ErrorIndexRaw
// snmp.varbind-list   → VarBinds
// ```
//
// ErrorStatusRaw != 0 is surfaced by the session methods as SNMPProtocolError;
// результат в этом случае отбрасывается целиком.
type SNMP_Packet_V2_decoded_PDU struct {
	RequestID      int32
	ErrorStatusRaw int32
	ErrorIndexRaw  int32
	VarBinds       []SNMP_Packet_V2_Decoded_VarBind
}

type SNMP_Packet_V2 struct {
	Version            int
	V2CcommunityString []byte
	V2VarBind          ASNber.RawValue
}

type SNMP_Packet_V2_VarBind struct {
	RSnmpOID ASNber.ObjectIdentifier
	RSnmpVar ASNber.RawValue
}

// SNMP_Packet_V2_Decoded_VarBind represents single SNMP VarBind (OID + Value pair).
//
// **RFC3416 §4.1.2.2** compliant structure: ObjectName + ObjectSyntax.
// Exact 1:1 mapping from BER-decoded VarBind SEQUENCE { ObjectName, ObjectSyntax }.
//
// Fields:
//
//	RSnmpOID - **Raw OID** as ASNber.ObjectIdentifier ([]int):
//	           • Input:  []int{1,3,6,1,2,1,1,1,0} → sysDescr.0
//	           • WALK:   Lexicographic progression (ifInOctets.1 → .2 → .3)
//	RSnmpVar - Value metadata + raw bytes (see SNMPVar docs)
//
// **Core usage patterns:**
//
// ```go
// // 1. Value extraction helpers (public API)
// oidStr := vb.OidString()    // "1.3.6.1.2.1.1.1.0"
// value := vb.ValueString()   // "Cisco IOS v15.1"
// typ := vb.TypeString()      // "OCTET STRING"
//
// // 2. Exception handling (GET response, error-status stays 0)
// if vb.RSnmpVar.ValueClass == 2 {  // ContextSpecific
//
//	    switch vb.RSnmpVar.ValueType {
//	    case 0: // noSuchObject
//	    case 1: // noSuchInstance
//	    case 2: // endOfMibView
//	    }
//	}
//
// ```
//
// **Production guarantees:**
// • **Order preserved** (input → output 1:1)
// • **Exceptions marked** (noSuchObject в ValueClass=2)
type SNMP_Packet_V2_Decoded_VarBind struct {
	RSnmpOID ASNber.ObjectIdentifier
	RSnmpVar SNMPVar
}

// SNMPVar represents ASN.1/BER decoded SNMP variable (VarBind value).
//
// **Exact mapping** from ASN.1 Tag byte: [Class:биты7-6][Constructed:бит5][Tag#:биты4-0]
// Contains raw Value bytes (NO auto-decoding) + metadata for type-safe processing.
//
// Fields:
//
//	ValueType  - Tag Number (0-31): INTEGER=2, OCTET STRING=4, OID=6, COUNTER32=1
//	ValueClass - Class (0-3):
//	             • 0=Universal (INTEGER/OCTET/OID/NULL)
//	             • 1=Application (COUNTER32/IPADDR/TIMETICKS)
//	             • 2=ContextSpecific (noSuchObject=0, endOfMibView=2)
//	IsCompound - Constructed flag: true=SEQUENCE/SET, false=primitive
//	Value      - **Raw BER content octets** (NO TLV wrapper, NO decoding):
//	             • INTEGER:     [0x00,0x01,0x2C] → sysUpTime=300
//	             • OCTET:       []byte("Cisco")
//	             • IPADDR:      [192,168,1,1]
//	             • OID:         [0x2B,0x06,0x01,0x02,0x01,0x01] → "1.3.6.1.2.1.1"
//
// **Raw Value philosophy:**
// • **NO auto-conversion** → 100% type safety
// • **Raw bytes** → user controls decoding (int32/uint64/IP/string)
// • **Wireshark exact** → Value=content octets после TLV stripping
type SNMPVar struct {
	ValueType  int
	ValueClass int
	IsCompound bool
	Value      []byte
}

var SNMPvbNullValue = SNMPVar{ValueType: ASNber.NullRawValue.Tag}

// Терминальные ошибки клиента. Every operation returns either data or
// exactly one of these, never both.

// SNMPResolutionError - target name did not parse as an IP address and the
// system resolver returned no address for it.
type SNMPResolutionError struct {
	Target string
	Err    error
}

// SNMPInvalidOidError - OID string rejected before any network activity.
type SNMPInvalidOidError struct {
	OidString string
	Reason    string
}

// SNMPValueFormatError - SET value text does not parse under its type tag.
// Raised before any network activity.
type SNMPValueFormatError struct {
	TypeTag   byte
	ValueText string
}

// SNMPTransportError - socket-level failure other than a timeout.
type SNMPTransportError struct {
	Target string
	Err    error
}

// SNMPTimeoutError - no response within the configured timeout.
type SNMPTimeoutError struct {
	Target    string
	TimeoutMs int
}

// SNMPDecodeError - response datagram rejected (malformed BER, wrong
// version, wrong PDU type or request-id mismatch).
type SNMPDecodeError struct {
	Reason string
}

// SNMPProtocolError - agent answered with error-status != 0.
type SNMPProtocolError struct {
	ErrorStatusRaw int32
	ErrorIndexRaw  int32
	FailedOID      []int
}

// SNMPWalkLoopError - agent returned the same OID again, walk cannot progress.
type SNMPWalkLoopError struct {
	Oid []int
}

type NetworkDevice struct {
	Address        string
	Port           int
	SNMPparameters SNMPUserParameters
	DebugLevel     uint8
}

// Пользовательские данные
type SNMPUserParameters struct {
	Community         string
	TimeoutMs         int
	MaxRepetitions    uint16
	MaxWalkIterations int
}

// SNMPv2Session holds validated session parameters. It keeps no socket:
// every operation resolves the target and opens its own UDP socket, so a
// single session is safe for concurrent use.
type SNMPv2Session struct {
	Address    string
	Port       int
	Debuglevel uint8
	SNMPparams SNMPParameters
}

// Данные SNMP о текущей сессии SNMP
type SNMPParameters struct {
	Community         string
	TimeoutMs         int
	MaxRepetitions    int32
	MaxWalkIterations int
}
