// Package config loads the sdui.yaml configuration.
//
// Every key is optional; missing keys keep their defaults. The file is
// decoded strictly, so unknown keys are reported as errors.
//
// # Configuration File Structure
//
//	icons:
//	  prefix: Icon
//	  fallback: IconQuestionMark
//	  loadTimeout: 2s
//	groups:
//	  gap: sm
//	  duplicateValues: last-wins   # or "error"
//	inputs:
//	  commit: change               # change, blur or debounce
//	  debounce: 300ms
//	log:
//	  level: info
//	serve:
//	  addr: localhost:3100
//
// # Usage
//
//	cfg, err := config.LoadFromDir(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Gap:", cfg.Groups.Gap)
package config
