// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	ASNber "github.com/OlegPowerC/asn1modsnmp"
)

// Convert_OID_StringToIntArray_RAW converts OID string to raw decimal int array.
//
// Direct decimal parsing WITHOUT BER subidentifier encoding (>127 stays single int).
// Used by ParseOID(), InSubTreeCheck(), lexicographic comparisons.
//
// Arguments:
//
//	OIDStr - "1.3.6.1.2.1.1.1" or "1.3.6.1.4.1.9.9.129.1"
//
// Returns:
//
//	[]int  - Raw decimals [1,3,6,1,4,1,9,9,129,1]
//	error  - strconv.Atoi failures
func Convert_OID_StringToIntArray_RAW(OIDStr string) (OIDIntArray []int, err error) {
	OIDStr = strings.Trim(OIDStr, ".")
	OIDStringArray := strings.Split(OIDStr, ".")
	var RetArray []int
	for _, OidStringVal := range OIDStringArray {
		OidIntVal, OidElement_Error_Conversion := strconv.Atoi(OidStringVal)
		if OidElement_Error_Conversion != nil {
			return RetArray, OidElement_Error_Conversion
		} else {
			RetArray = append(RetArray, OidIntVal)
		}
	}
	return RetArray, nil
}

// ParseOID parses and validates a dotted OID string.
//
// Accepts an optional leading dot (".1.3.6.1.2.1" == "1.3.6.1.2.1").
// Rejected with SNMPInvalidOidError:
//   - empty string, empty or non-numeric component
//   - negative component
//   - fewer than two components
//   - first component > 2; second component > 39 when first is 0 or 1
//
// Returns raw decimals ([]int), subidentifier packing is left to the BER
// marshaller. Никакой сетевой активности: чистый разбор текста.
func ParseOID(OIDStr string) ([]int, error) {
	OidArray, err := Convert_OID_StringToIntArray_RAW(OIDStr)
	if err != nil {
		return nil, SNMPInvalidOidError{OidString: OIDStr, Reason: err.Error()}
	}
	if len(OidArray) < 2 {
		return nil, SNMPInvalidOidError{OidString: OIDStr, Reason: "need at least two components"}
	}
	for _, val := range OidArray {
		if val < 0 {
			return nil, SNMPInvalidOidError{OidString: OIDStr, Reason: "negative component"}
		}
	}
	if OidArray[0] > 2 {
		return nil, SNMPInvalidOidError{OidString: OIDStr, Reason: "first component must be 0, 1 or 2"}
	}
	if OidArray[0] < 2 && OidArray[1] > 39 {
		return nil, SNMPInvalidOidError{OidString: OIDStr, Reason: "second component must be 0..39 here"}
	}
	return OidArray, nil
}

// Convert_OID_IntArrayToString_RAW - INTERNAL utility. Raw OID array → dotted string.
//
// Use for logging, JSON export, fmt.Printf(), debugging. SNMP Walk/BulkWalk/Get
// results carry []int - this is the visualization helper behind OidString().
//
// Args:
//
//	OIDIntArray - [1,3,6,1,2,1,2,2,1,2,1]
//
// Returns:
//
//	"1.3.6.1.2.1.2.2.1.2.1"
func Convert_OID_IntArrayToString_RAW(OIDIntArray []int) (OIDStr string) {
	RetStr := ""
	for varind, val := range OIDIntArray {
		RetStr += strconv.Itoa(val)
		if varind < len(OIDIntArray)-1 {
			RetStr += "."
		}
	}
	return RetStr
}

// Convert_OID_ValueBytesToString - INTERNAL. BER OID content octets → dotted string.
//
// Decodes multi-byte subidentifiers (>127) and unpacks the combined first
// subidentifier (X*40+Y, RFC2578 §7.2): 0x2b → "1.3".
//
// Args:
//
//	data - Raw BER content [0x2B,0x06,0x01,0x86,0x8D,0x1F]
//
// Returns:
//
//	"1.3.6.99999" style dotted string ("" for empty input)
func Convert_OID_ValueBytesToString(data []byte) string {
	SubIds := Convert_bytearray_to_intarray_with_multibyte_data(data)
	if len(SubIds) == 0 {
		return ""
	}
	//первый subidentifier содержит сразу две компоненты: X*40+Y
	var OidArray []int
	FirstValue := SubIds[0]
	switch {
	case FirstValue < 40:
		OidArray = append(OidArray, 0, FirstValue)
	case FirstValue < 80:
		OidArray = append(OidArray, 1, FirstValue-40)
	default:
		OidArray = append(OidArray, 2, FirstValue-80)
	}
	OidArray = append(OidArray, SubIds[1:]...)
	return Convert_OID_IntArrayToString_RAW(OidArray)
}

// Convert_bytearray_to_intarray - INTERNAL. []byte → []int zero-copy cast.
//
// Simple uint8→int conversion. NO BER decoding. Used before full BER processing.
func Convert_bytearray_to_intarray(bytearray []byte) (intarray []int) {
	retvar := make([]int, 0)
	for _, val := range bytearray {
		retvar = append(retvar, int(val))
	}
	return retvar
}

// Convert_bytearray_to_intarray_with_multibyte_data - INTERNAL. BER byte stream → decoded OID.
//
// **REAL BER DECODING!** Converts raw BER bytes with multi-byte subidentifiers (>127) to decimal.
// Used by the packet decoders for complete OID reconstruction.
//
// Args:
//
//	bytearray - Raw BER [0x01,0x03,0x81,0x01,0x02]
//
// Returns:
//
//	[]int     - [1,3,129,2] (0x81,0x01 → 129 decoded)
//
// BER decoding (RFC2578 §7.2):
//   - 0x81,0x01 → (0x81-0x80)*128 + 0x01 = 129
//   - 0x00-0x7F → single byte value
func Convert_bytearray_to_intarray_with_multibyte_data(bytearray []byte) (intarray []int) {
	retvar := make([]int, 0)
	multibyte_val := 0
	ivaltoa := 0
	largevalue := false
	for _, val := range bytearray {
		if val >= 0x80 {
			multibyte_val = multibyte_val * 128
			multibyte_val = multibyte_val + ((int(val) - 0x80) * 128)
			largevalue = true
			continue
		}
		//Тут значение уже меньше 0x80 но если предыдущие были больше то это последний байт в мультибайтовом значении ASN.1
		if largevalue {
			pmdatafull := multibyte_val + int(val)
			ivaltoa = pmdatafull
			largevalue = false
		} else {
			ivaltoa = int(val)
		}
		multibyte_val = 0
		retvar = append(retvar, ivaltoa)
	}
	return retvar
}

// Convert_snmpint_to_int32 - INTERNAL. SNMP INTEGER value bytes → int32.
//
// **NO BER decoding** - ASN.1 parser already stripped TLV.
// Pure BigEndian conversion of raw INTEGER content octets (1-4 bytes).
//
// Usage: ifAdminStatus.1 → [0x01] → 1
func Convert_snmpint_to_int32(bytearray []byte) (intdata int32) {
	bytearray32 := []byte{0, 0, 0, 0}
	switch len(bytearray) {
	case 1:
		return int32(int8(bytearray[0]))
	case 2:
		return int32(int16(binary.BigEndian.Uint16(bytearray)))
	case 3:
		copy(bytearray32[1:], bytearray)
		return int32(binary.BigEndian.Uint32(bytearray32))
	case 4:
		return int32(binary.BigEndian.Uint32(bytearray))
	default:
		return 0
	}
}

// Convert_snmpint_to_uint32 - INTERNAL. SNMP unsigned INTEGER → uint32.
//
// **NO BER decoding** - ASN.1 parser already stripped TLV.
// Pure BigEndian conversion of raw Counter32/Gauge32 content (1-5 bytes).
// Values >= 2^31 arrive in the minimal BER form: 5 bytes with a leading 0x00.
//
// Usage: ifInOctets → [0x00,0xFF,0xFF,0xFF] → 16777215
func Convert_snmpint_to_uint32(bytearray []byte) (intdata uint32) {
	bytearray32 := []byte{0, 0, 0, 0}
	switch len(bytearray) {
	case 1:
		return uint32(bytearray[0])
	case 2:
		return uint32(binary.BigEndian.Uint16(bytearray))
	case 3:
		copy(bytearray32[1:], bytearray)
		return binary.BigEndian.Uint32(bytearray32)
	case 4:
		return binary.BigEndian.Uint32(bytearray)
	case 5:
		//Ведущий 0x00 это знаковый паддинг, больше uint32 быть не может
		if bytearray[0] != 0x00 {
			return 0
		}
		return binary.BigEndian.Uint32(bytearray[1:])
	default:
		return 0
	}
}

// Convert_bytearray_to_int - INTERNAL. SNMP signed INTEGER → int64 (1-8 bytes).
//
// **NO BER decoding** - ASN.1 parser stripped TLV. Full BigEndian + sign extension.
//
// Usage: [0xFF,0xFF,0xF8,0x94] → -1900
func Convert_bytearray_to_int(bytearray []byte) (intdata int64) {
	bytearray32 := []byte{0, 0, 0, 0}
	bytearray64 := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	switch len(bytearray) {
	case 1:
		return int64(int8(bytearray[0]))
	case 2:
		return int64(int16(binary.BigEndian.Uint16(bytearray)))
	case 3:
		copy(bytearray32[1:], bytearray)
		return int64(int32(binary.BigEndian.Uint32(bytearray32)))
	case 4:
		return int64(int32(binary.BigEndian.Uint32(bytearray)))
	case 5:
		copy(bytearray64[3:], bytearray)
		return int64(binary.BigEndian.Uint64(bytearray64))
	case 6:
		copy(bytearray64[2:], bytearray)
		return int64(binary.BigEndian.Uint64(bytearray64))
	case 7:
		copy(bytearray64[1:], bytearray)
		return int64(binary.BigEndian.Uint64(bytearray64))
	case 8:
		return int64(binary.BigEndian.Uint64(bytearray))
	default:
		return 0
	}
}

// Convert_bytearray_to_uint - INTERNAL. SNMP unsigned INTEGER → uint64 (1-8 bytes).
//
// **NO BER decoding** - ASN.1 parser stripped TLV. Full BigEndian unsigned conversion.
// Handles Counter64, ifHCInOctets, Timeticks.
//
// Usage: ifHCInOctets → [0x00,0x00,0x00,0x01,0xFF,0xFF,0xFF,0xFF] → 8589934591
func Convert_bytearray_to_uint(bytearray []byte) (intdata uint64) {
	bytearray32 := []byte{0, 0, 0, 0}
	bytearray64 := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	switch len(bytearray) {
	case 1:
		return uint64(bytearray[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(bytearray))
	case 3:
		copy(bytearray32[1:], bytearray)
		return uint64(binary.BigEndian.Uint32(bytearray32))
	case 4:
		return uint64(binary.BigEndian.Uint32(bytearray))
	case 5:
		copy(bytearray64[3:], bytearray)
		return binary.BigEndian.Uint64(bytearray64)
	case 6:
		copy(bytearray64[2:], bytearray)
		return binary.BigEndian.Uint64(bytearray64)
	case 7:
		copy(bytearray64[1:], bytearray)
		return binary.BigEndian.Uint64(bytearray64)
	case 8:
		return binary.BigEndian.Uint64(bytearray)
	default:
		return 0
	}
}

// Convert_uint32_to_snmpbytes - INTERNAL. uint32 → minimal BER content octets.
//
// Strips leading zero octets, keeps a 0x00 prefix when the top bit is set so
// Counter32/Gauge32/TimeTicks values stay non-negative on the wire.
//
//	0          → [0x00]
//	127        → [0x7F]
//	128        → [0x00,0x80]
//	4294967295 → [0x00,0xFF,0xFF,0xFF,0xFF]
func Convert_uint32_to_snmpbytes(uval uint32) []byte {
	Bval := make([]byte, 4)
	binary.BigEndian.PutUint32(Bval, uval)
	FirstNonZero := 3
	for i := 0; i < 4; i++ {
		if Bval[i] != 0 {
			FirstNonZero = i
			break
		}
	}
	Bval = Bval[FirstNonZero:]
	if Bval[0] >= 0x80 {
		Bval = append([]byte{0x00}, Bval...)
	}
	return Bval
}

func isAscii(datab []byte) (AsciiString bool, LastAsciSymbolIndex int) {
	FirstZeroPos := -1
	LastAscipos := 0
	hasPrintable := false
	for i := 0; i < len(datab); i++ {
		if datab[i] < 0x20 || datab[i] > 0x7e {
			if datab[i] == 0x09 || datab[i] == 0x0a || datab[i] == 0x0d {
				continue
			}
			if datab[i] == 0x00 {
				if FirstZeroPos == -1 {
					FirstZeroPos = i
				}
				continue
			}
			return false, LastAscipos
		} else {
			LastAscipos = i
			hasPrintable = true
		}
	}
	if FirstZeroPos > -1 && FirstZeroPos < LastAscipos {
		return false, LastAscipos
	}
	return hasPrintable, LastAscipos
}

// Convert_ClassTag_to_String converts SNMPVar to human-readable ASN.1/SNMP type string.
//
// Parameters:
//
//	Var - SNMP variable with Class, Type, IsCompound, Value bytes
//
// Algorithm:
//
//	**Universal Class**: BOOLEAN/INTEGER/BITSTRING/OCTET_STRING/NULL/OID/SEQUENCE/SET
//	**OCTET_STRING**: isAscii() → "OCTET STRING" vs "HEX STRING"
//	**Application Class**: IPADDR/COUNTER32/GAUGE32/TIMETICKS/COUNTER64/OPAQUE
//	**ContextSpecific Class**: v2c exceptions NOSUCHOBJECT/NOSUCHINSTANCE/ENDOFMIBVIEW
//
// Returns:
//
//	StringType - Descriptive type name ("Universal OID", "COUNTER32", "IP ADDRESS")
func Convert_ClassTag_to_String(Var SNMPVar) string {
	StringType := "Unknown"
	switch Var.ValueClass {
	case ASNber.ClassUniversal:
		switch Var.ValueType {
		case ASNber.TagBoolean:
			StringType = "Universal BOOLEAN"
		case ASNber.TagInteger:
			StringType = "Universal INTEGER"
		case ASNber.TagBitString:
			StringType = "Universal BITSTRING"
		case ASNber.TagOctetString:
			AsVal, _ := isAscii(Var.Value)
			if AsVal {
				StringType = "Universal OCTET STRING"
			} else {
				StringType = "Universal HEX STRING"
			}
		case ASNber.TagNull:
			StringType = "Universal NULL"

		case ASNber.TagOID:
			StringType = "Universal OID"
		case ASNber.TagSequence:
			if Var.IsCompound {
				StringType = "Universal SEQUENCE"
			}
		case ASNber.TagSet:
			if Var.IsCompound {
				StringType = "Universal SET"
			}
		default:
			StringType = "Unknown Universal"

		}

	case ASNber.ClassApplication:
		switch Var.ValueType {
		case SNMP_type_IPADDR:
			StringType = "IP ADDRESS"
		case SNMP_type_COUNTER32:
			StringType = "COUNTER32"
		case SNMP_type_GAUGE32:
			StringType = "GAUGE32"
		case SNMP_type_COUNTER64:
			StringType = "COUNTER64"
		case SNMP_type_TIMETICKS:
			StringType = "TIMETICKS"
		case SNMP_type_OPAQUE:
			StringType = "OPAQUE"

		default:
			StringType = "Unknown APPLICATION"
		}

	case ASNber.ClassContextSpecific:
		switch Var.ValueType {
		case tagERR_noSuchObject:
			StringType = "NOSUCHOBJECT"
		case tagERR_noSuchInstance:
			StringType = "NOSUCHINSTANCE"
		case tagERR_EndOfMib:
			StringType = "ENDOFMIBVIEW"
		default:
			StringType = "Unknown ContextSpecific"
		}
	}
	return StringType
}

// SetSNMPVar_OctetString creates SNMP OctetString VarBind value for SET operations.
//
// **NO BER encoding** - returns raw ASN.1-ready bytes for packet builder.
// Tag=0x04, string → []byte. Used in SNMP SET for sysName.0, ifAlias.
//
// Usage:
//
//	sysName := SetSNMPVar_OctetString("my-router")
//	err := sess.SNMP_SetVar("1.3.6.1.2.1.1.5.0", sysName)
func SetSNMPVar_OctetString(str string) SNMPVar {
	return SNMPVar{ValueClass: ASNber.ClassUniversal, ValueType: ASNber.TagOctetString, IsCompound: false, Value: []byte(str)}
}

// SetSNMPVar_Int creates SNMP INTEGER VarBind value for SET operations.
//
// **NO BER encoding** - returns raw ASN.1-ready BigEndian bytes (4 bytes fixed).
// Tag=0x02. Used in SNMP SET for ifAdminStatus.1, sysContact.0.
//
// Usage:
//
//	ifUp := SetSNMPVar_Int(1)  // ifAdminStatus up
//	err := sess.SNMP_SetVar("1.3.6.1.2.1.2.2.1.7.1", ifUp)
func SetSNMPVar_Int(ival int32) SNMPVar {
	Bval := make([]byte, 4)
	binary.BigEndian.PutUint32(Bval, uint32(ival))
	return SNMPVar{ValueClass: ASNber.ClassUniversal, ValueType: ASNber.TagInteger, IsCompound: false, Value: Bval}
}

// SetSNMPVar_Gauge32 creates SNMP Gauge32/Unsigned32 VarBind value for SET operations.
//
// **NO BER encoding** - returns minimal unsigned content octets.
// Application Tag=2 (RFC2578).
func SetSNMPVar_Gauge32(uval uint32) SNMPVar {
	return SNMPVar{ValueClass: ASNber.ClassApplication, ValueType: SNMP_type_GAUGE32, IsCompound: false, Value: Convert_uint32_to_snmpbytes(uval)}
}

// SetSNMPVar_TimeTicks creates SNMP TimeTicks VarBind value for SET operations.
//
// Value is in hundredths of a second (raw SNMP units, no conversion).
// Application Tag=3 (RFC2578).
func SetSNMPVar_TimeTicks(uval uint32) SNMPVar {
	return SNMPVar{ValueClass: ASNber.ClassApplication, ValueType: SNMP_type_TIMETICKS, IsCompound: false, Value: Convert_uint32_to_snmpbytes(uval)}
}

// SetSNMPVar_IpAddr creates SNMP IpAddress VarBind value for SET operations.
//
// **NO BER encoding** - returns raw ASN.1-ready IPv4 bytes (4 bytes fixed).
// Application Tag=0 (RFC2578). IPv6 is rejected: SNMP IpAddress is 4 bytes.
//
// Usage:
//
//	ipVar, err := SetSNMPVar_IpAddr(net.ParseIP("192.168.1.1"))
func SetSNMPVar_IpAddr(ipval net.IP) (SNMPVar, error) {
	Bval := ipval.To4()
	if Bval == nil {
		return SNMPVar{}, errors.New("cannot convert IP to 4x bytes")
	}
	return SNMPVar{ValueClass: ASNber.ClassApplication, ValueType: SNMP_type_IPADDR, IsCompound: false, Value: Bval}, nil
}

// SetSNMPVar_Oid creates SNMP OBJECT IDENTIFIER VarBind value for SET operations.
//
// Marshals the raw OID array through the BER encoder and strips the TLV
// header, so Value holds exactly the wire content octets.
func SetSNMPVar_Oid(oid []int) (SNMPVar, error) {
	OidMarshaled, err := ASNber.Marshal(ASNber.ObjectIdentifier(oid))
	if err != nil {
		return SNMPVar{}, err
	}
	OidBytes, err := ASNber.ExtractDataWOTagAndLen(OidMarshaled)
	if err != nil {
		return SNMPVar{}, err
	}
	return SNMPVar{ValueClass: ASNber.ClassUniversal, ValueType: ASNber.TagOID, IsCompound: false, Value: OidBytes}, nil
}

type setValueRule struct {
	Name  string
	Parse func(ValueText string) (SNMPVar, error)
}

// setValueRules - закрытая таблица типов для SET. One entry per type tag,
// keyed by the net-snmp style single letter. Unknown letters do not fall
// back to anything.
var setValueRules = map[byte]setValueRule{
	'i': {Name: "INTEGER", Parse: parseSetInteger},
	'u': {Name: "GAUGE32", Parse: parseSetUnsigned},
	't': {Name: "TIMETICKS", Parse: parseSetTimeTicks},
	'a': {Name: "IP ADDRESS", Parse: parseSetIpAddress},
	'o': {Name: "OID", Parse: parseSetOid},
	's': {Name: "OCTET STRING", Parse: parseSetOctetString},
	'x': {Name: "HEX STRING", Parse: parseSetHexString},
	'd': {Name: "DECIMAL STRING", Parse: parseSetDecimalString},
	'n': {Name: "NULL", Parse: parseSetNull},
}

// ParseSetValue parses a SET value from its text form under a type tag.
//
// Tags follow the net-snmp convention:
//
//	i - INTEGER (signed 32 bit decimal)
//	u - Unsigned32/Gauge32 (unsigned 32 bit decimal)
//	t - TimeTicks (unsigned 32 bit decimal, hundredths of a second)
//	a - IpAddress (dotted IPv4)
//	o - OBJECT IDENTIFIER (dotted form)
//	s - OCTET STRING (literal bytes of the string)
//	x - OCTET STRING from hex digits (spaces, colons and dashes allowed)
//	d - OCTET STRING from decimal byte values 0..255 (space or comma separated)
//	n - NULL (value text must be empty)
//
// Unknown tags and values that do not parse return SNMPValueFormatError.
// Никакой сетевой активности: чистый разбор текста.
func ParseSetValue(TypeTag byte, ValueText string) (SNMPVar, error) {
	rule, ok := setValueRules[TypeTag]
	if !ok {
		return SNMPVar{}, SNMPValueFormatError{TypeTag: TypeTag, ValueText: ValueText}
	}
	Retvar, err := rule.Parse(ValueText)
	if err != nil {
		return SNMPVar{}, SNMPValueFormatError{TypeTag: TypeTag, ValueText: ValueText}
	}
	return Retvar, nil
}

func parseSetInteger(ValueText string) (SNMPVar, error) {
	Ival, err := strconv.ParseInt(ValueText, 10, 32)
	if err != nil {
		return SNMPVar{}, err
	}
	return SetSNMPVar_Int(int32(Ival)), nil
}

func parseSetUnsigned(ValueText string) (SNMPVar, error) {
	Uval, err := strconv.ParseUint(ValueText, 10, 32)
	if err != nil {
		return SNMPVar{}, err
	}
	return SetSNMPVar_Gauge32(uint32(Uval)), nil
}

func parseSetTimeTicks(ValueText string) (SNMPVar, error) {
	Uval, err := strconv.ParseUint(ValueText, 10, 32)
	if err != nil {
		return SNMPVar{}, err
	}
	return SetSNMPVar_TimeTicks(uint32(Uval)), nil
}

func parseSetIpAddress(ValueText string) (SNMPVar, error) {
	Ipval := net.ParseIP(ValueText)
	if Ipval == nil {
		return SNMPVar{}, errors.New("not an IP address")
	}
	return SetSNMPVar_IpAddr(Ipval)
}

func parseSetOid(ValueText string) (SNMPVar, error) {
	OidArray, err := ParseOID(ValueText)
	if err != nil {
		return SNMPVar{}, err
	}
	return SetSNMPVar_Oid(OidArray)
}

func parseSetOctetString(ValueText string) (SNMPVar, error) {
	return SetSNMPVar_OctetString(ValueText), nil
}

func parseSetHexString(ValueText string) (SNMPVar, error) {
	//Разделители допустимы: "DE:AD-BE EF" == "DEADBEEF"
	Cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == ':' || r == '-' {
			return -1
		}
		return r
	}, ValueText)
	Bval, err := hex.DecodeString(Cleaned)
	if err != nil {
		return SNMPVar{}, err
	}
	return SNMPVar{ValueClass: ASNber.ClassUniversal, ValueType: ASNber.TagOctetString, IsCompound: false, Value: Bval}, nil
}

func parseSetDecimalString(ValueText string) (SNMPVar, error) {
	Fields := strings.FieldsFunc(ValueText, func(r rune) bool {
		return r == ' ' || r == ','
	})
	Bval := make([]byte, 0, len(Fields))
	for _, field := range Fields {
		Dval, err := strconv.Atoi(field)
		if err != nil {
			return SNMPVar{}, err
		}
		if Dval < 0 || Dval > 255 {
			return SNMPVar{}, errors.New("byte value out of range 0..255")
		}
		Bval = append(Bval, byte(Dval))
	}
	return SNMPVar{ValueClass: ASNber.ClassUniversal, ValueType: ASNber.TagOctetString, IsCompound: false, Value: Bval}, nil
}

func parseSetNull(ValueText string) (SNMPVar, error) {
	if ValueText != "" {
		return SNMPVar{}, errors.New("NULL takes no value")
	}
	return SNMPvbNullValue, nil
}

// Convert_setvar_toasn1raw converts SNMPVar to ASN.1 RawValue for SET requests.
//
// Parameters:
//
//	invar - Source SNMPVar (parsed from previous GET or user input)
//
// Algorithm:
//
//	Direct field mapping: ValueType→Tag, ValueClass→Class, Value→Bytes
//	Preserves original BER encoding from SNMPVar.Value
//
// Returns:
//
//	Retvar - ASN.1 RawValue ready for SNMP SET packet marshaling
func Convert_setvar_toasn1raw(invar SNMPVar) ASNber.RawValue {
	Retvar := ASNber.NullRawValue
	Retvar.Tag = invar.ValueType
	Retvar.Class = invar.ValueClass
	Retvar.Bytes = invar.Value
	return Retvar
}

// Convert_Variable_To_String formats SNMPVar value as human-readable string.
//
// Parameters:
//
//	Var - SNMP variable with decoded Class/Type/Value
//
// Algorithm:
// **Universal Types**: INTEGER→decimal, OCTET_STRING→ASCII/HEX, OID→dotted notation, NULL→""
// **Application Types**:
//   - IPADDR→"x.x.x.x"
//   - TIMETICKS→decimal hundredths of a second (raw SNMP units, no Duration)
//   - COUNTER32/GAUGE32→unsigned decimal
//   - COUNTER64→unsigned decimal (uint64)
//   - OPAQUE→hex
//
// **ContextSpecific** (v2c exceptions)→"noSuchObject"/"noSuchInstance"/"endOfMibView"
// **Compound** (SEQUENCE/SET)→hex dump
//
// Returns:
//
//	Formatted string for logging/display ("123", "1.3.6.1...", "192.168.1.1")
func Convert_Variable_To_String(Var SNMPVar) string {
	if !Var.IsCompound {
		switch Var.ValueClass {
		case ASNber.ClassUniversal:
			switch Var.ValueType {
			case ASNber.TagInteger:
				return fmt.Sprintf("%d", Convert_snmpint_to_int32(Var.Value))
			case ASNber.TagBitString:
				return fmt.Sprintf("%d", Convert_bytearray_to_int(Var.Value))
			case ASNber.TagOctetString:
				return formatOctetString(Var.Value)
			case ASNber.TagNull:
				return ""
			case ASNber.TagOID:
				return Convert_OID_ValueBytesToString(Var.Value)
			default:
				return string(Var.Value)
			}
		case ASNber.ClassApplication:
			switch Var.ValueType {
			case SNMP_type_IPADDR:
				return formatIPAddress(Var.Value)
			case SNMP_type_TIMETICKS:
				//Сырые сотые доли секунды, без преобразования в Duration
				return fmt.Sprintf("%d", Convert_bytearray_to_uint(Var.Value))
			case SNMP_type_COUNTER32:
				return fmt.Sprintf("%d", Convert_snmpint_to_uint32(Var.Value))
			case SNMP_type_GAUGE32:
				return fmt.Sprintf("%d", Convert_snmpint_to_uint32(Var.Value))
			case SNMP_type_COUNTER64:
				return fmt.Sprintf("%d", Convert_bytearray_to_uint(Var.Value))
			case SNMP_type_OPAQUE:
				//Бинарные данные
				return hex.EncodeToString(Var.Value)
			}
		case ASNber.ClassContextSpecific:
			switch Var.ValueType {
			case tagERR_noSuchObject:
				return SNMPErrorNames[tagandclassERR_noSuchObject]
			case tagERR_noSuchInstance:
				return SNMPErrorNames[tagandclassERR_noSuchInstance]
			case tagERR_EndOfMib:
				return SNMPErrorNames[tagandclassERR_EndOfMib]
			}
		}
	} else {
		//Это SEQUENCE или SET, выводим HEX строку
		return hex.EncodeToString(Var.Value)
	}
	return ""
}

// Convert_TimeTicks_To_Duration converts raw TimeTicks content octets
// (hundredths of a second) to time.Duration.
//
// Usage: sysUpTime [0x78] → 1.2s
func Convert_TimeTicks_To_Duration(data []byte) time.Duration {
	TimetickInt := Convert_bytearray_to_uint(data)
	timetickinmillisecond := time.Duration(TimetickInt * 10)
	return time.Millisecond * timetickinmillisecond
}

// formatIPAddress formats SNMP Application IPADDR (4-byte IPv4) as dotted decimal.
//
// Parameters:
//
//	data - 4-byte BER-decoded IP address bytes (big-endian)
//
// Algorithm:
//  1. **Strict 4-byte validation** (SNMP IPADDR format)
//  2. net.IP(data) → automatic "192.168.1.1" formatting
//  3. Invalid length → "Invalid IP (len=X): <hex>" diagnostic
//
// Returns:
//
//	Formatted IPv4 string or hex diagnostic for non-IPADDR data
func formatIPAddress(data []byte) string {
	// Проверяем длину, если это не ipv4 то вернем HEX строку
	if len(data) != 4 {
		return fmt.Sprintf("Invalid IP (len=%d): %s", len(data), hex.EncodeToString(data))
	}
	ip := net.IP(data)
	if ip == nil {
		return hex.EncodeToString(data)
	}
	return ip.String()
}

// formatOctetString formats SNMP OCTET STRING as ASCII or HEX dump.
//
// Parameters:
//
//	data - BER-decoded OCTET STRING bytes
//
// Algorithm:
//  1. **ASCII validation**: isAscii() checks printable chars (0x20-0x7E)
//  2. **C-string trim**: Cuts trailing NUL bytes using LastAsciSymbolIndex
//  3. Valid ASCII → string conversion with trim
//  4. Binary data → lowercase hex dump
//
// Returns:
//
//	Human-readable: "hostname123" or "cafebabe010203"
func formatOctetString(data []byte) string {
	// Проверяем, это ASCII текст?
	if isAsciiFl, lastIndex := isAscii(data); isAsciiFl {
		if lastIndex < len(data)-1 {
			return string(data[:lastIndex+1])
		}
		return string(data)
	}
	// Иначе выводим как HEX строку
	return hex.EncodeToString(data)
}

// OidString returns the binding OID in dotted form.
func (vb SNMP_Packet_V2_Decoded_VarBind) OidString() string {
	return Convert_OID_IntArrayToString_RAW(vb.RSnmpOID)
}

// ValueString returns the binding value formatted by its wire type.
func (vb SNMP_Packet_V2_Decoded_VarBind) ValueString() string {
	return Convert_Variable_To_String(vb.RSnmpVar)
}

// TypeString returns the human-readable type name of the binding value.
func (vb SNMP_Packet_V2_Decoded_VarBind) TypeString() string {
	return Convert_ClassTag_to_String(vb.RSnmpVar)
}
