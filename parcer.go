// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег
// Author: Volkov Oleg
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

import (
	"fmt"

	ASNber "github.com/OlegPowerC/asn1modsnmp"
)

// receiverV2parser decodes a v2c RESPONSE datagram. Malformed input is
// rejected with SNMPDecodeError, error-status != 0 with SNMPProtocolError.
func receiverV2parser(packet []byte, checkreqid bool, reqid int32, debuglevel uint8) (decodedDatav2 SNMPv2_DecodePacket, errorv2 error) {
	var vs SNMP_Packet_V2
	var RetVar SNMPv2_DecodePacket
	var pdu1 SNMP_Packet_V2_PDU
	var umerr error

	_, umerr = ASNber.Unmarshal(packet, &vs)
	if umerr != nil {
		return RetVar, SNMPDecodeError{Reason: umerr.Error()}
	}
	if vs.Version != 1 {
		return RetVar, SNMPDecodeError{Reason: fmt.Sprintf("unexpected version: %d", vs.Version)}
	}
	if len(vs.V2VarBind.FullBytes) == 0 {
		return RetVar, SNMPDecodeError{Reason: "empty V2VarBind"}
	}

	RetVar.Version = vs.Version
	RetVar.Community = vs.V2CcommunityString
	//Проверяем тип пакета, клиент ждет только RESPONSE
	if vs.V2VarBind.Class != ASNber.ClassContextSpecific || vs.V2VarBind.Tag != SNMPv2_REQUEST_RESPONSE {
		return RetVar, SNMPDecodeError{Reason: fmt.Sprintf("unexpected PDU type: class %d tag %d", vs.V2VarBind.Class, vs.V2VarBind.Tag)}
	}

	//Это хак для того чтоб работал Unmarshal ASN.1 правильно
	//дело в том что нам приходит PDU и первый байт в нем - тип и он будет Context-Specific
	//Его не поймет Unmarshal, но это просто Sequence (0x30) вот тут мы его и меняем на Sequence
	//Меняем копию: FullBytes указывает внутрь входного пакета и портить его нельзя
	//А чтоб избежать ошибок выше проверяется длина FullBytes и если 0 то выход
	pdubytes := append([]byte(nil), vs.V2VarBind.FullBytes...)
	pdubytes[0] = 0x30
	_, umerr = ASNber.Unmarshal(pdubytes, &pdu1)
	if umerr != nil {
		return RetVar, SNMPDecodeError{Reason: umerr.Error()}
	}

	if checkreqid && pdu1.RequestID != reqid {
		if debuglevel > 99 {
			fmt.Println("request id mismatch: sent", reqid, "received", pdu1.RequestID)
		}
		return RetVar, SNMPDecodeError{Reason: "request id mismatch"}
	}

	RetVar.V2PDU.RequestID = pdu1.RequestID
	RetVar.V2PDU.ErrorIndexRaw = pdu1.ErrorIndexRaw
	RetVar.V2PDU.ErrorStatusRaw = pdu1.ErrorStatusRaw

	if pdu1.ErrorStatusRaw != sNMP_ErrNoError {
		failedOID := []int{}
		//Скопируем проблемный OID
		if pdu1.ErrorIndexRaw > 0 {
			if int(pdu1.ErrorIndexRaw-1) < len(pdu1.VarBinds) {
				failedOID = pdu1.VarBinds[pdu1.ErrorIndexRaw-1].RSnmpOID
			}
		}
		return RetVar, SNMPProtocolError{ErrorStatusRaw: pdu1.ErrorStatusRaw, ErrorIndexRaw: pdu1.ErrorIndexRaw, FailedOID: failedOID}
	}

	//Exception VarBinds (noSuchObject/noSuchInstance/endOfMibView) остаются
	//в результате как данные: error-status у агента при этом 0
	for _, datain := range pdu1.VarBinds {
		if debuglevel > 199 {
			fmt.Println("varbind:", Convert_OID_IntArrayToString_RAW(datain.RSnmpOID), "class:", datain.RSnmpVar.Class, "tag:", datain.RSnmpVar.Tag)
		}
		RetVar.V2PDU.VarBinds = append(RetVar.V2PDU.VarBinds, SNMP_Packet_V2_Decoded_VarBind{datain.RSnmpOID, SNMPVar{datain.RSnmpVar.Tag, datain.RSnmpVar.Class, datain.RSnmpVar.IsCompound, datain.RSnmpVar.Bytes}})
	}

	return RetVar, nil
}
