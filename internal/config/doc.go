// Package config provides configuration parsing for flux projects.
//
// The configuration is stored in flux.json, flux.yaml or flux.yml at the
// project root. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "server": {"host": "localhost", "port": 3000},
//	  "render": {"pretty": true, "indent": "  "},
//	  "log": {"level": "info", "format": "text"},
//	  "snapshot": {
//	    "dir": "snapshots",
//	    "s3": {"bucket": "my-bucket", "prefix": "flux/", "region": "us-east-1"}
//	  },
//	  "state": {"count": 0, "title": "flux"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Address())
package config
