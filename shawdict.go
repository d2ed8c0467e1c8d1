/*
Command line utility to build Shavian dictionaries from the pronunciation
lexicon and the sense cache.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"cloud.google.com/go/firestore"

	"github.com/shawdict/shawdict/config"
	"github.com/shawdict/shawdict/consolidate"
	"github.com/shawdict/shawdict/generator"
	"github.com/shawdict/shawdict/index"
	"github.com/shawdict/shawdict/lexicon"
	"github.com/shawdict/shawdict/senses"
	"github.com/shawdict/shawdict/spellcheck"
)

// parseDirections resolves the comma separated -dict flag value
func parseDirections(value string) ([]generator.Direction, error) {
	var directions []generator.Direction
	for _, name := range strings.Split(value, ",") {
		switch strings.TrimSpace(name) {
		case "shaw-eng":
			directions = append(directions, generator.ShawEng)
		case "eng-shaw":
			directions = append(directions, generator.EngShaw)
		case "shaw-shaw":
			directions = append(directions, generator.ShawShaw)
		case "":
		default:
			return nil, fmt.Errorf("unknown dictionary direction %q", name)
		}
	}
	return directions, nil
}

// loadLexicon reads the pronunciation lexicon file
func loadLexicon(c config.BuildConfig) ([]lexicon.RawKey, error) {
	f, err := os.Open(c.LexiconFile)
	if err != nil {
		return nil, fmt.Errorf("could not open lexicon %s: %v", c.LexiconFile, err)
	}
	defer f.Close()
	return lexicon.LoadLexicon(f)
}

// loadSenses reads the comprehensive sense cache file
func loadSenses(c config.BuildConfig) (*senses.Cache, error) {
	f, err := os.Open(c.SenseCacheFile)
	if err != nil {
		return nil, fmt.Errorf("could not open sense cache %s: %v", c.SenseCacheFile, err)
	}
	defer f.Close()
	return senses.LoadCache(f)
}

// loadDescription renders the front matter description HTML
func loadDescription(c config.BuildConfig) string {
	if c.DescriptionFile == "" {
		return generator.DefaultDescription()
	}
	f, err := os.Open(c.DescriptionFile)
	if err != nil {
		log.Printf("main: could not open description %s, using default: %v",
			c.DescriptionFile, err)
		return generator.DefaultDescription()
	}
	defer f.Close()
	html, err := generator.LoadDescription(f)
	if err != nil {
		log.Printf("main: could not render description, using default: %v", err)
		return generator.DefaultDescription()
	}
	return html
}

// writeDictionary generates one dictionary XML file
func writeDictionary(c config.BuildConfig, direction generator.Direction,
	result *consolidate.Result, cache *senses.Cache, rawKeys []lexicon.RawKey,
	description string) ([]index.IndexEntry, error) {
	projected := index.Project(result.Entries, direction.Axis())
	g := &generator.Generator{
		Config: generator.XMLOutputConfig{
			Direction:       direction,
			HomeDialect:     senses.HomeDialect(c.Dialect),
			DescriptionHTML: description,
			Templates:       generator.NewTemplateMap(c.TemplateDir),
		},
		Cache:         cache,
		Normalizer:    senses.NewNormalizer(cache, senses.DialectUS),
		ShavianLookup: generator.BuildShavianLookup(rawKeys),
	}
	fName := fmt.Sprintf("%s/%s-%s.xml", c.BuildDir, direction.Name(), c.Dialect)
	f, err := os.Create(fName)
	if err != nil {
		return nil, fmt.Errorf("could not create %s: %v", fName, err)
	}
	defer f.Close()
	if err := g.WriteDictionary(f, projected); err != nil {
		return nil, err
	}
	log.Printf("main: generated %s", fName)
	return projected, nil
}

// writeHunspell generates the .dic and .aff word list files
func writeHunspell(c config.BuildConfig, cache *senses.Cache) error {
	dicName := fmt.Sprintf("%s/shaw-spell.en_%s.dic", c.BuildDir, strings.ToUpper(c.Dialect))
	f, err := os.Create(dicName)
	if err != nil {
		return fmt.Errorf("could not create %s: %v", dicName, err)
	}
	defer f.Close()
	if err := spellcheck.WriteDic(f, cache, c.Dialect); err != nil {
		return err
	}
	affName := fmt.Sprintf("%s/shaw-spell.en_%s.aff", c.BuildDir, strings.ToUpper(c.Dialect))
	af, err := os.Create(affName)
	if err != nil {
		return fmt.Errorf("could not create %s: %v", affName, err)
	}
	defer af.Close()
	if err := spellcheck.WriteAff(af, c.Dialect); err != nil {
		return err
	}
	log.Printf("main: generated %s and %s", dicName, affName)
	return nil
}

// uploadIndex writes one projected index to the Firestore search index
func uploadIndex(ctx context.Context, c config.BuildConfig,
	projected []index.IndexEntry, axis index.Axis) error {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		return fmt.Errorf("GOOGLE_CLOUD_PROJECT not set")
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return fmt.Errorf("could not create Firestore client: %v", err)
	}
	defer client.Close()
	return index.UpdateSearchIndex(ctx, client, projected, c.Corpus, c.Generation, axis)
}

// Entry point for the shawdict command line tool.
// Default action is to generate all three dictionary directions.
func main() {
	// Command line flags
	var configFile = flag.String("config", "shawdict.toml",
		"Build configuration file.")
	var dict = flag.String("dict", "shaw-eng,eng-shaw,shaw-shaw",
		"Comma separated dictionary directions to generate: "+
			"shaw-eng, eng-shaw, shaw-shaw.")
	var dialect = flag.String("dialect", "",
		"Home dialect, gb or us, overriding the config file.")
	var hunspell = flag.Bool("hunspell", false, "Generate hunspell "+
		".dic and .aff word list files.")
	var fsIndex = flag.Bool("fsindex", false, "Upload the lookup index "+
		"to the Firestore search index.")
	var memprofile = flag.String("memprofile", "", "write memory profile to "+
		"this file")
	flag.Parse()

	buildConfig, err := config.LoadFile(*configFile)
	if err != nil {
		log.Fatalf("main: could not load config: %v", err)
	}
	if *dialect != "" {
		if *dialect != "gb" && *dialect != "us" {
			log.Fatalf("main: unsupported dialect %q", *dialect)
		}
		buildConfig.Dialect = *dialect
	}
	directions, err := parseDirections(*dict)
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	rawKeys, err := loadLexicon(buildConfig)
	if err != nil {
		log.Fatalf("main: error loading lexicon: %v", err)
	}
	log.Printf("main: loaded %d raw keys", len(rawKeys))
	cache, err := loadSenses(buildConfig)
	if err != nil {
		log.Fatalf("main: error loading sense cache: %v", err)
	}
	if err := os.MkdirAll(buildConfig.BuildDir, 0755); err != nil {
		log.Fatalf("main: could not create build dir: %v", err)
	}
	description := loadDescription(buildConfig)

	// One merge per dialect build, shared by every direction
	merger := consolidate.Merger{
		Assigner: consolidate.Assigner{
			Resolver:    cache,
			HomeDialect: senses.HomeDialect(buildConfig.Dialect),
		},
		Detector: cache,
	}
	result, err := merger.Merge(rawKeys)
	if err != nil {
		log.Fatalf("main: error merging entries: %v", err)
	}
	log.Printf("main: %d consolidated entries, %d dropped foreign keys",
		len(result.Entries), result.DroppedForeign)

	ctx := context.Background()
	for _, direction := range directions {
		projected, err := writeDictionary(buildConfig, direction, result, cache,
			rawKeys, description)
		if err != nil {
			log.Fatalf("main: error generating %s: %v", direction.Name(), err)
		}
		if *fsIndex {
			if err := uploadIndex(ctx, buildConfig, projected, direction.Axis()); err != nil {
				log.Fatalf("main: error uploading index: %v", err)
			}
		}
	}

	if *hunspell {
		if err := writeHunspell(buildConfig, cache); err != nil {
			log.Fatalf("main: error generating hunspell files: %v", err)
		}
	}

	// Memory profiling
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
