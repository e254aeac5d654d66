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
	"strings"

	PowerSNMP "github.com/OlegPowerC/powersnmpv2"
)

func main() {
	Host := flag.String("h", "", "Switch or routers IP or DNS name")
	SNMPcommunity := flag.String("c", "", "SNMP read community name")
	Port := flag.Int("p", 161, "SNMP agent UDP port")
	Timeout := flag.Int("timeout", 0, "Response timeout in milliseconds, 0 - default (3000), negative - wait indefinitely")
	DebugLevel := flag.Int("debug", 0, "Debug level")
	StrOids := flag.String("o", "1.3.6.1.2.1.1.3.0", "SNMP OID or comma separated OID list")
	AsDuration := flag.Bool("d", false, "Print TIMETICKS values as duration")
	flag.Parse()

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

	Oids := strings.Split(*StrOids, ",")
	for oin := range Oids {
		Oids[oin] = strings.TrimSpace(Oids[oin])
	}

	data, geterr := Ssess.SNMP_Get(Oids)
	if geterr != nil {
		fmt.Println(geterr)
		os.Exit(1)
	}

	for _, vb := range data {
		if *AsDuration && vb.TypeString() == "TIMETICKS" {
			fmt.Println(vb.OidString(), "=", PowerSNMP.Convert_TimeTicks_To_Duration(vb.RSnmpVar.Value), ":", vb.TypeString())
			continue
		}
		fmt.Println(vb.OidString(), "=", vb.ValueString(), ":", vb.TypeString())
	}
}
