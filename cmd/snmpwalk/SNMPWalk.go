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
	SNMPcommunity := flag.String("c", "", "SNMP read community name")
	Port := flag.Int("p", 161, "SNMP agent UDP port")
	Timeout := flag.Int("timeout", 0, "Response timeout in milliseconds, 0 - default (3000), negative - wait indefinitely")
	Bulk := flag.Bool("bulk", false, "Walk with GETBULK instead of GETNEXT")
	MaxRep := flag.Int("maxrep", 0, "GETBULK max-repetitions, 0 - default (25)")
	DebugLevel := flag.Int("debug", 0, "Debug level")
	StrOid := flag.String("o", "1.3.6", "SNMP OID")
	RawToo := flag.Bool("r", false, "RAW data")
	flag.Parse()

	var RouterDev PowerSNMP.NetworkDevice

	RouterDev.Address = *Host
	RouterDev.Port = *Port
	RouterDev.SNMPparameters.Community = *SNMPcommunity
	RouterDev.SNMPparameters.TimeoutMs = *Timeout
	RouterDev.SNMPparameters.MaxRepetitions = uint16(*MaxRep)
	RouterDev.DebugLevel = uint8(*DebugLevel)

	Ssess, SsessError := PowerSNMP.SNMP_Init(RouterDev)
	if SsessError != nil {
		fmt.Println(SsessError)
		os.Exit(1)
	}

	ChIn := make(chan PowerSNMP.ChanDataWErr, 3000)

	if *Bulk {
		go Ssess.SNMP_BulkWalk_WChan(*StrOid, ChIn)
	} else {
		go Ssess.SNMP_Walk_WChan(*StrOid, ChIn)
	}

	ResultNumber := 0
	for gdata := range ChIn {
		if gdata.Error != nil {
			fmt.Println(gdata.Error)
			os.Exit(1)
		}
		if gdata.ValidData {
			ResultNumber++
			if *RawToo {
				fmt.Println(gdata.Data.OidString(), "=", gdata.Data.ValueString(), ":", gdata.Data.TypeString(), gdata.Data.RSnmpVar.Value)
			} else {
				fmt.Println(gdata.Data.OidString(), "=", gdata.Data.ValueString(), ":", gdata.Data.TypeString())
			}
		}
	}
	fmt.Println("Total:", ResultNumber)
}
