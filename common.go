// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)
package PowerSNMPv2

import (
	"errors"
	"fmt"
	"strings"
)

// ChanDataWErr -единица данных потокового обхода (SNMP_Walk_WChan, SNMP_BulkWalk_WChan).
//
// Канальные варианты обхода пишут в канал по одной записи на каждую принятую
// VarBind и закрывают канал по завершении. Контракт:
//
//   - Data содержит очередную пару OID/значение, ValidData при этом true
//   - при терминальной ошибке в канал уходит ровно одна финальная запись
//     с заполненным Error (ValidData равен false), после чего канал закрывается
//   - чистое завершение обхода (выход из поддерева, endOfMibView, исчерпание
//     лимита итераций) просто закрывает канал без записи с ошибкой
//
// Канал закрывает всегда отправитель, поэтому приемник может безопасно
// читать через range:
//
//	CData := make(chan PowerSNMPv2.ChanDataWErr, 100)
//	go session.SNMP_Walk_WChan("1.3.6.1.2.1.2.2.1.2", CData)
//	for record := range CData {
//		if record.Error != nil {
//			log.Fatal(record.Error)
//		}
//		if record.ValidData {
//			fmt.Println(record.Data.OidString(), "=", record.Data.ValueString())
//		}
//	}
type ChanDataWErr struct {
	Data      SNMP_Packet_V2_Decoded_VarBind
	ValidData bool
	Error     error
}

// InSubTreeCheck reports whether OidCurrent lies inside the subtree rooted
// at OidMain, prefix-wise. The root itself counts as inside.
//
// Examples:
//
//	InSubTreeCheck([]int{1,3,6,1,2,1,2}, []int{1,3,6,1,2,1,2,2,1,2,1}) == true
//	InSubTreeCheck([]int{1,3,6,1,2,1,2}, []int{1,3,6,1,2,1,3,1})       == false
//	InSubTreeCheck([]int{1,3,6,1,2,1,2}, []int{1,3,6,1,2,1,2})         == true
//
// Обход дерева (SNMP_Walk и варианты) использует эту проверку как условие
// выхода: первая VarBind за пределами поддерева завершает обход.
func InSubTreeCheck(OidMain []int, OidCurrent []int) bool {
	if len(OidCurrent) < len(OidMain) {
		return false
	}
	for i := range OidMain {
		if OidMain[i] != OidCurrent[i] {
			return false
		}
	}
	return true
}

// SNMPErrorIntToText возвращает стандартное имя error-status по RFC 3416
// (noError, tooBig, noSuchName ... inconsistentName). Для кода вне таблицы
// возвращается строка вида "error-status: 42".
func SNMPErrorIntToText(SNMPErrorCode int) string {
	if name, ok := SNMPErrorNames[SNMPErrorCode]; ok {
		return name
	}
	return fmt.Sprintf("error-status: %d", SNMPErrorCode)
}

func (e SNMPResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve target %s: %v", e.Target, e.Err)
}

func (e SNMPResolutionError) Unwrap() error {
	return e.Err
}

func (e SNMPInvalidOidError) Error() string {
	return fmt.Sprintf("invalid OID %q: %s", e.OidString, e.Reason)
}

func (e SNMPValueFormatError) Error() string {
	if rule, ok := setValueRules[e.TypeTag]; ok {
		return fmt.Sprintf("cannot parse %q as %s (tag '%c')", e.ValueText, rule.Name, e.TypeTag)
	}
	return fmt.Sprintf("unknown type tag '%c'", e.TypeTag)
}

func (e SNMPTransportError) Error() string {
	return fmt.Sprintf("transport error, target %s: %v", e.Target, e.Err)
}

func (e SNMPTransportError) Unwrap() error {
	return e.Err
}

func (e SNMPTimeoutError) Error() string {
	return fmt.Sprintf("no response from %s within %d ms", e.Target, e.TimeoutMs)
}

func (e SNMPDecodeError) Error() string {
	return fmt.Sprintf("cannot decode response: %s", e.Reason)
}

func (e SNMPProtocolError) Error() string {
	return fmt.Sprintf("%s (status=%d, index=%d): %s", SNMPErrorIntToText(int(e.ErrorStatusRaw)), e.ErrorStatusRaw, e.ErrorIndexRaw, Convert_OID_IntArrayToString_RAW(e.FailedOID))
}

func (e SNMPWalkLoopError) Error() string {
	return fmt.Sprintf("OID is not increased: %s", Convert_OID_IntArrayToString_RAW(e.Oid))
}

// CheckUserParams проверяет параметры устройства перед созданием сессии.
// Адрес может быть и IP, и DNS-именем: разрешение имени происходит не здесь,
// а при каждом запросе (ошибку SNMPResolutionError в этом случае вернет сам
// запрос).
func CheckUserParams(ndev NetworkDevice) error {
	if len(strings.TrimSpace(ndev.Address)) == 0 {
		return errors.New("target address is required")
	}
	if ndev.Port < 0 || ndev.Port > 65535 {
		return errors.New("wrong port number, must be from 0 to 65535")
	}
	if len(ndev.SNMPparameters.Community) == 0 {
		return errors.New("for version 2c, snmp community is required")
	}
	return nil
}

// SNMP_Init -creates an SNMP v2c session from device parameters.
//
// # Purpose / Назначение
//
// Validates the NetworkDevice fields, fills in defaults and returns a
// *SNMPv2Session ready for SNMP_Get / SNMP_Set / SNMP_Walk and the other
// operations. No network activity happens here: the target address is
// resolved and a UDP socket is opened per request, so one session can be
// shared by concurrent goroutines without locking.
//
// # Defaults / Значения по умолчанию
//
//   - Port 0                → 161
//   - TimeoutMs 0           → 3000 ms (negative value → wait indefinitely)
//   - MaxRepetitions 0      → 25 (values above 80 are clamped to 25 too)
//   - MaxWalkIterations <=0 → 10000
//
// # Example / Пример
//
//	Device := PowerSNMPv2.NetworkDevice{
//		Address: "10.5.0.11",
//		SNMPparameters: PowerSNMPv2.SNMPUserParameters{
//			Community: "public",
//			TimeoutMs: 2000,
//		},
//	}
//	session, err := PowerSNMPv2.SNMP_Init(Device)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := session.SNMP_Get([]string{"1.3.6.1.2.1.1.3.0"})
func SNMP_Init(Ndev NetworkDevice) (*SNMPv2Session, error) {
	var Session SNMPv2Session
	checkuparamerr := CheckUserParams(Ndev)
	if checkuparamerr != nil {
		return nil, checkuparamerr
	}
	Session.Debuglevel = Ndev.DebugLevel
	Session.Address = Ndev.Address
	Session.Port = Ndev.Port
	if Ndev.Port == 0 {
		Session.Port = SNMP_DEFAULTPORT
	}
	Session.SNMPparams.Community = Ndev.SNMPparameters.Community
	//Ноль означает "по умолчанию", отрицательное значение - ждать ответа без ограничения
	Session.SNMPparams.TimeoutMs = Ndev.SNMPparameters.TimeoutMs
	if Ndev.SNMPparameters.TimeoutMs == 0 {
		Session.SNMPparams.TimeoutMs = SNMP_DEFAULTTIMEOUT_MS
	}
	if Ndev.SNMPparameters.MaxRepetitions == 0 || Ndev.SNMPparameters.MaxRepetitions > SNMP_MAXREPETITION {
		Session.SNMPparams.MaxRepetitions = int32(SNMP_DEFAULTREPETITION)
	} else {
		Session.SNMPparams.MaxRepetitions = int32(Ndev.SNMPparameters.MaxRepetitions)
	}
	Session.SNMPparams.MaxWalkIterations = Ndev.SNMPparameters.MaxWalkIterations
	if Ndev.SNMPparameters.MaxWalkIterations <= 0 {
		Session.SNMPparams.MaxWalkIterations = SNMP_MAXIMUMWALK
	}
	return &Session, nil
}

// Общий путь GET/GETNEXT: разбор всех OID, разрешение адреса, один обмен.
// Любая локальная ошибка возвращается до какой-либо сетевой активности.
func (SNMPparameters *SNMPv2Session) snmpv2_RequestWithOids(Oids []string, Request_Type int) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	OidVar := make([]SNMP_Packet_V2_Decoded_VarBind, 0, len(Oids))
	for _, OidStr := range Oids {
		Oid, oiderr := ParseOID(OidStr)
		if oiderr != nil {
			return nil, oiderr
		}
		OidVar = append(OidVar, SNMP_Packet_V2_Decoded_VarBind{RSnmpOID: Oid, RSnmpVar: SNMPvbNullValue})
	}
	ip, resolveerr := ResolveTargetAddress(SNMPparameters.Address)
	if resolveerr != nil {
		return nil, resolveerr
	}
	return SNMPparameters.snmpv2_GetSet(ip, OidVar, Request_Type)
}

// SNMP_Get -retrieves the values of one or more OIDs in a single GET exchange.
//
// # Arguments / Аргументы
//
//   - Oids -OID strings in dotted notation, a leading dot is accepted
//     ("1.3.6.1.2.1.1.3.0" and ".1.3.6.1.2.1.1.3.0" are equivalent)
//
// # Returns / Возвращаемые значения
//
// A slice of decoded VarBinds in the same length and order as the input, or
// exactly one error -never both. VarBind values are raw BER material, use
// the OidString/ValueString/TypeString accessors for display.
//
// An OID the agent does not serve comes back as a normal VarBind carrying
// the noSuchObject/noSuchInstance exception (ValueString renders it
// symbolically), not as an error: other VarBinds of the same request still
// carry their data. Агент с ненулевым error-status (например noAccess из-за
// community без прав на чтение) -это уже ошибка SNMPProtocolError, данные
// при этом отбрасываются целиком.
//
// # Example / Пример
//
//	data, err := session.SNMP_Get([]string{"1.3.6.1.2.1.1.3.0", "1.3.6.1.2.1.1.5.0"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, vb := range data {
//		fmt.Printf("%s = %s : %s\n", vb.OidString(), vb.ValueString(), vb.TypeString())
//	}
func (SNMPparameters *SNMPv2Session) SNMP_Get(Oids []string) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	return SNMPparameters.snmpv2_RequestWithOids(Oids, SNMPv2_REQUEST_GET)
}

// SNMP_GetNext -single GETNEXT exchange: for each requested OID the agent
// returns the lexicographically following VarBind. Аргументы и контракт
// результата те же, что у SNMP_Get. Полезен для ручного пошагового обхода,
// для обхода целого поддерева есть SNMP_Walk.
func (SNMPparameters *SNMPv2Session) SNMP_GetNext(Oids []string) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	return SNMPparameters.snmpv2_RequestWithOids(Oids, SNMPv2_REQUEST_GETNEXT)
}

// SNMP_Set -writes a single value in a SET exchange, parsing the value from text.
//
// # Arguments / Аргументы
//
//   - OidStr -OID to write, dotted notation
//   - ValueText -value in text form
//   - TypeTag -type letter, как у net-snmp утилиты snmpset:
//
//     'i' INTEGER, 'u' GAUGE32, 't' TIMETICKS, 'a' IP ADDRESS,
//     'o' OID, 's' OCTET STRING, 'x' HEX STRING, 'd' DECIMAL STRING, 'n' NULL
//
// # Returns / Возвращаемые значения
//
// The agent's RESPONSE VarBinds (the written variable echoed back), or one
// error. Текст, не разбираемый по правилам типа, дает SNMPValueFormatError
// еще до какой-либо сетевой активности. Запись в несуществующую или
// read-only переменную агент отклоняет через error-status (notWritable,
// noAccess, noCreation) -это SNMPProtocolError.
//
// # Example / Пример
//
//	data, err := session.SNMP_Set("1.3.6.1.2.1.1.5.0", "core-switch-01", 's')
//
// Для значения, собранного вручную (например OPAQUE), есть SNMP_SetVar.
func (SNMPparameters *SNMPv2Session) SNMP_Set(OidStr string, ValueText string, TypeTag byte) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	//Сначала локальный разбор значения, сеть потом
	VBvalue, parseerr := ParseSetValue(TypeTag, ValueText)
	if parseerr != nil {
		return nil, parseerr
	}
	return SNMPparameters.SNMP_SetVar(OidStr, VBvalue)
}

// SNMP_SetVar -SET с готовым значением SNMPVar, минуя текстовый разбор.
// Значение обычно приходит из конструкторов SetSNMPVar_OctetString,
// SetSNMPVar_Int, SetSNMPVar_Gauge32, SetSNMPVar_TimeTicks,
// SetSNMPVar_IpAddr, SetSNMPVar_Oid, либо собирается вручную для типов,
// у которых текстового правила нет. Контракт результата тот же, что у
// SNMP_Set.
func (SNMPparameters *SNMPv2Session) SNMP_SetVar(OidStr string, Value SNMPVar) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	Oid, oiderr := ParseOID(OidStr)
	if oiderr != nil {
		return nil, oiderr
	}
	ip, resolveerr := ResolveTargetAddress(SNMPparameters.Address)
	if resolveerr != nil {
		return nil, resolveerr
	}
	OidVar := []SNMP_Packet_V2_Decoded_VarBind{{RSnmpOID: Oid, RSnmpVar: Value}}
	return SNMPparameters.snmpv2_GetSet(ip, OidVar, SNMPv2_REQUEST_SET)
}

// SNMP_Walk -retrieves the whole subtree below OidStr with a GETNEXT loop.
//
// # Traversal / Обход
//
// The walk is seeded at the subtree root and repeats GETNEXT, each round
// continuing from the last received OID. It ends cleanly on the first
// VarBind outside the subtree, on an endOfMibView exception, or when the
// session's MaxWalkIterations cap is reached. Корень поддерева сам в
// результат не входит: обход возвращает строго то, что лежит ниже.
//
// # Returns / Возвращаемые значения
//
// VarBinds в порядке обхода агента. All-or-nothing: любая ошибка (таймаут,
// error-status, не растущий OID у некорректного агента) отбрасывает уже
// собранные данные и возвращает только ошибку. Для больших поддеревьев и
// пошаговой обработки есть потоковый вариант SNMP_Walk_WChan.
//
// # Example / Пример
//
//	//Имена всех интерфейсов (ifDescr)
//	data, err := session.SNMP_Walk("1.3.6.1.2.1.2.2.1.2")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, vb := range data {
//		fmt.Printf("%s = %s\n", vb.OidString(), vb.ValueString())
//	}
func (SNMPparameters *SNMPv2Session) SNMP_Walk(OidStr string) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	Oid, oiderr := ParseOID(OidStr)
	if oiderr != nil {
		return nil, oiderr
	}
	ip, resolveerr := ResolveTargetAddress(SNMPparameters.Address)
	if resolveerr != nil {
		return nil, resolveerr
	}
	return SNMPparameters.snmpv2_Walk(ip, Oid, SNMPv2_REQUEST_GETNEXT)
}

// SNMP_BulkWalk -обход поддерева через GETBULK: тот же контракт, что у
// SNMP_Walk, но агент отдает до MaxRepetitions VarBind за один обмен, что
// на больших таблицах заметно быстрее. MaxRepetitions настраивается при
// SNMP_Init (по умолчанию 25).
func (SNMPparameters *SNMPv2Session) SNMP_BulkWalk(OidStr string) (RetVar []SNMP_Packet_V2_Decoded_VarBind, RetError error) {
	Oid, oiderr := ParseOID(OidStr)
	if oiderr != nil {
		return nil, oiderr
	}
	ip, resolveerr := ResolveTargetAddress(SNMPparameters.Address)
	if resolveerr != nil {
		return nil, resolveerr
	}
	return SNMPparameters.snmpv2_Walk(ip, Oid, SNMPv2_REQUEST_GETBULK)
}

// SNMP_Walk_WChan -потоковый вариант SNMP_Walk: каждая принятая VarBind
// сразу уходит в канал записью ChanDataWErr, память под все поддерево не
// накапливается. Контракт канала описан у типа ChanDataWErr; закрывает
// канал эта функция. Запускать обычно в отдельной горутине:
//
//	CData := make(chan PowerSNMPv2.ChanDataWErr, 100)
//	go session.SNMP_Walk_WChan("1.3.6.1.2.1.2.2.1.2", CData)
//	for record := range CData {
//		...
//	}
func (SNMPparameters *SNMPv2Session) SNMP_Walk_WChan(OidStr string, CData chan<- ChanDataWErr) {
	Oid, oiderr := ParseOID(OidStr)
	if oiderr != nil {
		CData <- ChanDataWErr{Error: oiderr}
		close(CData)
		return
	}
	ip, resolveerr := ResolveTargetAddress(SNMPparameters.Address)
	if resolveerr != nil {
		CData <- ChanDataWErr{Error: resolveerr}
		close(CData)
		return
	}
	SNMPparameters.snmpv2_Walk_WChan(ip, Oid, SNMPv2_REQUEST_GETNEXT, CData)
}

// SNMP_BulkWalk_WChan -потоковый вариант SNMP_BulkWalk (GETBULK).
// Контракт канала тот же, что у SNMP_Walk_WChan.
func (SNMPparameters *SNMPv2Session) SNMP_BulkWalk_WChan(OidStr string, CData chan<- ChanDataWErr) {
	Oid, oiderr := ParseOID(OidStr)
	if oiderr != nil {
		CData <- ChanDataWErr{Error: oiderr}
		close(CData)
		return
	}
	ip, resolveerr := ResolveTargetAddress(SNMPparameters.Address)
	if resolveerr != nil {
		CData <- ChanDataWErr{Error: resolveerr}
		close(CData)
		return
	}
	SNMPparameters.snmpv2_Walk_WChan(ip, Oid, SNMPv2_REQUEST_GETBULK, CData)
}
