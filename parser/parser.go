package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"realestate-analyzer/models"
	"realestate-analyzer/utils"
)

// Parser reads #-delimited property records from a text file.
// Recognized record shapes:
//
//	REALESTATE#city#price#sqm#rooms#genre
//	PANEL#city#price#sqm#rooms#genre#floor#insulated("yes"/other)
//
// A bad line only costs that line; the rest of the batch continues.
type Parser struct {
	logger *utils.Logger
}

// New creates a Parser with the given logger.
func New(logger *utils.Logger) *Parser {
	return &Parser{logger: logger}
}

// LoadFile parses every record in the file at path. Blank lines are
// skipped silently; unknown record kinds and malformed fields are
// skipped with a warning. A missing or unreadable file is the only
// error returned.
func (p *Parser) LoadFile(path string) ([]models.Property, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %q: %w", path, err)
	}
	defer f.Close()

	var result []models.Property
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		prop, err := p.parseLine(line)
		if err != nil {
			p.logger.Warn("[parser] Skipping line %d: %v", lineNo, err)
			continue
		}
		result = append(result, prop)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: read %q: %w", path, err)
	}

	p.logger.Info("[parser] Parsed %d properties from %s", len(result), path)
	return result, nil
}

func (p *Parser) parseLine(line string) (models.Property, error) {
	parts := strings.Split(line, "#")
	kind := strings.ToUpper(strings.TrimSpace(parts[0]))

	switch kind {
	case "REALESTATE":
		if len(parts) != 6 {
			return nil, fmt.Errorf("REALESTATE record needs 6 fields, got %d", len(parts))
		}
		city, price, sqm, rooms, genre, err := parseBaseFields(parts[1:6])
		if err != nil {
			return nil, err
		}
		return models.NewRealEstate(city, price, sqm, rooms, genre), nil

	case "PANEL":
		if len(parts) != 8 {
			return nil, fmt.Errorf("PANEL record needs 8 fields, got %d", len(parts))
		}
		city, price, sqm, rooms, genre, err := parseBaseFields(parts[1:6])
		if err != nil {
			return nil, err
		}
		floor, err := strconv.Atoi(strings.TrimSpace(parts[6]))
		if err != nil {
			return nil, fmt.Errorf("bad floor %q", parts[6])
		}
		insulated := strings.EqualFold(strings.TrimSpace(parts[7]), "yes")
		return models.NewPanel(city, price, sqm, rooms, genre, floor, insulated), nil
	}

	return nil, fmt.Errorf("unknown record kind %q", parts[0])
}

// parseBaseFields parses the city#price#sqm#rooms#genre run shared by
// both record kinds.
func parseBaseFields(fields []string) (string, float64, float64, int, models.Genre, error) {
	city := strings.TrimSpace(fields[0])

	price, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return "", 0, 0, 0, "", fmt.Errorf("bad price %q", fields[1])
	}
	sqm, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return "", 0, 0, 0, "", fmt.Errorf("bad sqm %q", fields[2])
	}
	rooms, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil || rooms < 0 {
		return "", 0, 0, 0, "", fmt.Errorf("bad room count %q", fields[3])
	}
	genre, err := models.ParseGenre(fields[4])
	if err != nil {
		return "", 0, 0, 0, "", err
	}
	return city, price, sqm, rooms, genre, nil
}

// SampleData returns a built-in demo dataset, used when no input file
// is available.
func SampleData() []models.Property {
	return []models.Property{
		models.NewRealEstate("Budapest", 250000, 100, 4, models.GenreFlat),
		models.NewRealEstate("Debrecen", 220000, 120, 5, models.GenreFamilyHouse),
		models.NewRealEstate("Nyíregyháza", 110000, 60, 2, models.GenreFarm),
		models.NewRealEstate("Nyíregyháza", 250000, 160, 6, models.GenreFamilyHouse),
		models.NewRealEstate("Kisvárda", 150000, 50, 2, models.GenreFlat),
		models.NewPanel("Nyíregyháza", 150000, 68, 4, models.GenreFlat, 4, true),
		models.NewPanel("Budapest", 180000, 70, 3, models.GenreFlat, 4, false),
		models.NewPanel("Debrecen", 120000, 35, 2, models.GenreFlat, 0, true),
		models.NewPanel("Tiszaújváros", 120000, 750, 3, models.GenreFlat, 10, false),
		models.NewPanel("Nyíregyháza", 170000, 80, 3, models.GenreFlat, 7, false),
	}
}
