package config

import (
	"encoding/json"
	"io/ioutil"
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/hjson/hjson-go"
	"github.com/imdario/mergo"
)

var (
	// C stands for config
	C *Config
)

func Bootstrap() {
	C = new(Config)
	C.Reload = make(chan bool)
	C.Merge("./static/resources/config.hjson")
	C.Merge("./config.hjson")

	// Watch config file
	go C.WatchFile("./config.hjson")
}

type Config struct {
	Reload  chan bool
	raw     *map[string]interface{}
	current *Mirador
}

// Params returns a copy of the decoded runtime params.
func (c *Config) Params() Mirador {
	return *c.current
}

func (c *Config) Merge(file string) {
	var loaded map[string]interface{}

	// Read the file first
	dat, err := ioutil.ReadFile(file)
	if err != nil {
		log.Println("config:", err)
		return
	}

	if err := hjson.Unmarshal(dat, &loaded); err != nil {
		panic(err)
	}

	if c.raw == nil {
		c.raw = new(map[string]interface{})
	}

	// Clone the freshly loaded map, then fill the gaps with whatever
	// was merged before it (the loaded file wins).
	merged := make(map[string]interface{}, len(loaded))
	for k, v := range loaded {
		merged[k] = v
	}

	if err := mergo.Merge(&merged, *c.raw); err != nil {
		panic(err)
	}

	c.raw = &merged

	// Decode the merged map into typed params.
	encoded, err := json.Marshal(merged)
	if err != nil {
		panic(err)
	}

	params := new(Mirador)
	if err := json.Unmarshal(encoded, params); err != nil {
		panic(err)
	}

	c.current = params

	// Reload signal if anyone is listening...
	go func() {
		c.Reload <- true
	}()
}

func (c *Config) WatchFile(file string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case event := <-watcher.Events:
				if event.Op&fsnotify.Write == fsnotify.Write {
					log.Println("modified file:", event.Name)
					c.Merge(event.Name)
				}
			case err := <-watcher.Errors:
				log.Println("error:", err)
			}
		}
	}()

	err = watcher.Add(file)
	if err != nil {
		log.Println("error:", err)
	}
}
