// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)

package main

import (
	"flag"
	"fmt"
	"os"

	PowerSNMP "github.com/OlegPowerC/powersnmpv2"
)

func main() {
	Host := flag.String("h", "", "Switch or routers IP or DNS name")
	SNMPcommunity := flag.String("c", "", "SNMP write community name")
	Port := flag.Int("p", 161, "SNMP agent UDP port")
	Timeout := flag.Int("timeout", 0, "Response timeout in milliseconds, 0 - default (3000), negative - wait indefinitely")
	DebugLevel := flag.Int("debug", 0, "Debug level")
	StrOid := flag.String("o", "", "SNMP OID to write")
	TypeTag := flag.String("t", "s", "Value type, one letter like net-snmp snmpset: i,u,t,a,o,s,x,d,n")
	Value := flag.String("value", "", "Value in text form")
	flag.Parse()

	if len(*TypeTag) != 1 {
		fmt.Println("value type must be a single letter: i,u,t,a,o,s,x,d,n")
		os.Exit(1)
	}

	var RouterDev PowerSNMP.NetworkDevice

	RouterDev.Address = *Host
	RouterDev.Port = *Port
	RouterDev.SNMPparameters.Community = *SNMPcommunity
	RouterDev.SNMPparameters.TimeoutMs = *Timeout
	RouterDev.DebugLevel = uint8(*DebugLevel)

	Ssess, SsessError := PowerSNMP.SNMP_Init(RouterDev)
	if SsessError != nil {
		fmt.Println(SsessError)
		os.Exit(1)
	}

	data, seterr := Ssess.SNMP_Set(*StrOid, *Value, (*TypeTag)[0])
	if seterr != nil {
		fmt.Println(seterr)
		os.Exit(1)
	}

	for _, vb := range data {
		fmt.Println(vb.OidString(), "=", vb.ValueString(), ":", vb.TypeString())
	}
}
