// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

// ASN.1/BER tag encoding constants.
// Bits 7-6: Class (Universal=00, Application=01, Context=10, Private=11)
// Bit 5: Constructed flag (0=primitive, 1=constructed/compound like SEQUENCE)
// Bits 4-0: Tag Number
//
// Example: Class=0x01 (Application), Tag=0x03 → 0x43 (APPLICATION 3 = SNMP TIMETICKS)

const (
	// SNMP Application Types (Class=1)
	SNMP_type_IPADDR    = 0
	SNMP_type_COUNTER32 = 1
	SNMP_type_GAUGE32   = 2
	SNMP_type_TIMETICKS = 3
	SNMP_type_OPAQUE    = 4
	SNMP_type_COUNTER64 = 6

	// Limits & Defaults
	SNMP_MAXIMUMWALK               = 10000
	SNMP_BUFFERSIZE                = 65535
	SNMP_DEFAULTTIMEOUT_MS         = 3000
	SNMP_TIMEOUT_INDEFINITE        = -1
	SNMP_DEFAULTPORT               = 161
	SNMP_MAXREPETITION      uint16 = 80
	SNMP_DEFAULTREPETITION  uint16 = 25

	// SNMPv2 Exception Tags (ContextSpecific)
	tagERR_noSuchObject           = 0
	tagandclassERR_noSuchObject   = 0x80
	tagERR_noSuchInstance         = 1
	tagandclassERR_noSuchInstance = 0x81
	tagERR_EndOfMib               = 2
	tagandclassERR_EndOfMib       = 0x82
)

const (
	// SNMPv2 PDU Types (RFC3416)
	SNMPv2_REQUEST_GET      = 0
	SNMPv2_REQUEST_GETNEXT  = 1
	SNMPv2_REQUEST_RESPONSE = 2
	SNMPv2_REQUEST_SET      = 3
	SNMPv2_REQUEST_GETBULK  = 5
)

const (
	// SNMP Error Status Codes (RFC3416 §4.1.2.1)
	sNMP_ErrNoError             = 0x00
	sNMP_ErrTooBig              = 0x01
	sNMP_ErrNoSuchName          = 0x02
	sNMP_ErrBadValue            = 0x03
	sNMP_ErrReadOnly            = 0x04
	sNMP_ErrGenErr              = 0x05
	sNMP_ErrNoAccess            = 0x06
	sNMP_ErrWrongType           = 0x07
	sNMP_ErrWrongLength         = 0x08
	sNMP_ErrWrongEncoding       = 0x09
	sNMP_ErrWrongValue          = 0x0A
	sNMP_ErrNoCreation          = 0x0B
	sNMP_ErrInconsistentValue   = 0x0C
	sNMP_ErrResourceUnavailable = 0x0D
	sNMP_ErrCommitFailed        = 0x0E
	sNMP_ErrUndoFailed          = 0x0F
	sNMP_ErrAuthorizationError  = 0x10
	sNMP_ErrNotWritable         = 0x11
	sNMP_ErrInconsistentName    = 0x12
)
