// PowerSNMPv2 - SNMP v2c library for Go
// Автор: Волков Олег, ООО "Пауэр Си"
// Author: Volkov Oleg, PowerC LLC
// License: MIT (commercial version with support available)
// Лицензия: MIT (доступна коммерческая версия с поддержкой)

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	PowerSNMP "github.com/OlegPowerC/powersnmpv2"
	"gopkg.in/yaml.v3"
)

// Формат конфигурации:
//
//	interval_seconds: 60
//	targets:
//	  - address: 10.5.0.11
//	    community: public
//	    timeout_ms: 2000
//	    oids:
//	      - 1.3.6.1.2.1.1.3.0
//	      - 1.3.6.1.2.1.1.5.0
//	  - address: core-switch-01
//	    port: 1161
//	    community: public
//	    oids:
//	      - 1.3.6.1.2.1.2.2.1.10.1
type PollTarget struct {
	Address   string   `yaml:"address"`
	Port      int      `yaml:"port"`
	Community string   `yaml:"community"`
	TimeoutMs int      `yaml:"timeout_ms"`
	Oids      []string `yaml:"oids"`
}

type PollConfig struct {
	IntervalSeconds int          `yaml:"interval_seconds"`
	Targets         []PollTarget `yaml:"targets"`
}

func loadPollConfig(path string) (PollConfig, error) {
	var config PollConfig
	f, ferr := os.Open(path)
	if ferr != nil {
		return config, ferr
	}
	defer f.Close()
	d := yaml.NewDecoder(f)
	//Опечатки в именах полей должны отклоняться, а не молча игнорироваться
	d.KnownFields(true)
	if derr := d.Decode(&config); derr != nil {
		return config, fmt.Errorf("cannot parse %s: %w", path, derr)
	}
	if len(config.Targets) == 0 {
		return config, fmt.Errorf("%s: no targets", path)
	}
	return config, nil
}

func pollOnce(config PollConfig, debuglevel uint8) {
	for _, target := range config.Targets {
		var Dev PowerSNMP.NetworkDevice

		Dev.Address = target.Address
		Dev.Port = target.Port
		Dev.SNMPparameters.Community = target.Community
		Dev.SNMPparameters.TimeoutMs = target.TimeoutMs
		Dev.DebugLevel = debuglevel

		Ssess, SsessError := PowerSNMP.SNMP_Init(Dev)
		if SsessError != nil {
			fmt.Println(target.Address, ":", SsessError)
			continue
		}

		data, geterr := Ssess.SNMP_Get(target.Oids)
		if geterr != nil {
			fmt.Println(target.Address, ":", geterr)
			continue
		}
		for _, vb := range data {
			fmt.Printf("%s %s = %s : %s\n", target.Address, vb.OidString(), vb.ValueString(), vb.TypeString())
		}
	}
}

func main() {
	ConfigFile := flag.String("f", "poll.yaml", "YAML file with poll targets")
	Once := flag.Bool("once", false, "Poll one time and exit")
	DebugLevel := flag.Int("debug", 0, "Debug level")
	flag.Parse()

	config, cfgerr := loadPollConfig(*ConfigFile)
	if cfgerr != nil {
		log.Fatal(cfgerr)
	}

	pollOnce(config, uint8(*DebugLevel))
	if *Once || config.IntervalSeconds <= 0 {
		return
	}

	ticker := time.NewTicker(time.Duration(config.IntervalSeconds) * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		pollOnce(config, uint8(*DebugLevel))
	}
}
