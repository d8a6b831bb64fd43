// Command mapedit inspects and edits level files outside the game.
//
//	mapedit info FILE
//	mapedit autotile FILE
//	mapedit import -dir TMXDIR -out MAPDIR
//	mapedit paint -type grass [-variant 0] [-brush 1] [-flipx] [-flipy] FILE X Y
//	mapedit erase FILE X Y
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/automoto/kagerun/shared/tilemap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("mapedit: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mapedit info|autotile|import|paint|erase ...")
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "info":
		return runInfo(rest, out)
	case "autotile":
		return runAutotile(rest, out)
	case "import":
		return runImport(rest, out)
	case "paint":
		return runPaint(rest, out)
	case "erase":
		return runErase(rest, out)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func loadMap(path string) (*tilemap.Tilemap, error) {
	m := tilemap.New(tilemap.DefaultTileSize)
	if err := m.Load(path); err != nil {
		return nil, err
	}
	return m, nil
}

func runInfo(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: mapedit info FILE")
	}
	m, err := loadMap(fs.Arg(0))
	if err != nil {
		return err
	}

	counts := map[tilemap.TileID]int{}
	for _, t := range m.Tiles() {
		counts[t.ID()]++
	}
	ids := make([]tilemap.TileID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Type != ids[j].Type {
			return ids[i].Type < ids[j].Type
		}
		return ids[i].Variant < ids[j].Variant
	})

	b := m.Bounds()
	fmt.Fprintf(out, "tile size %d, %d grid tiles, %d off-grid\n", m.TileSize, m.Len(), m.OffgridLen())
	fmt.Fprintf(out, "bounds %.0f,%.0f %.0fx%.0f\n", b.X, b.Y, b.W, b.H)
	for _, id := range ids {
		fmt.Fprintf(out, "%-16s %d  %d\n", id.Type, id.Variant, counts[id])
	}
	return nil
}

func runAutotile(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("autotile", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: mapedit autotile FILE...")
	}
	for _, path := range fs.Args() {
		m, err := loadMap(path)
		if err != nil {
			return err
		}
		m.Autotile()
		if err := m.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "autotiled %s\n", path)
	}
	return nil
}

func runImport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	dir := fs.String("dir", ".", "Directory of .tmx files")
	outDir := fs.String("out", "assets/maps", "Directory to write .json maps to")
	autotile := fs.Bool("autotile", true, "Autotile after importing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	maps, names, err := tilemap.ImportDir(os.DirFS(*dir), ".")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *outDir, err)
	}
	for _, name := range names {
		m := maps[name]
		if *autotile {
			m.Autotile()
		}
		path := filepath.Join(*outDir, name+".json")
		if err := m.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "imported %s (%d tiles)\n", path, m.Len())
	}
	return nil
}

func runPaint(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	typ := fs.String("type", tilemap.TypeGrass, "Tile type")
	variant := fs.Int("variant", 0, "Tile variant")
	brush := fs.Int("brush", 1, "Brush size in cells")
	flipX := fs.Bool("flipx", false, "Mirror horizontally")
	flipY := fs.Bool("flipy", false, "Mirror vertically")
	noAuto := fs.Bool("no-autotile", false, "Keep variants as painted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, key, err := fileAndCell(fs, "paint")
	if err != nil {
		return err
	}
	m, err := loadMap(path)
	if err != nil {
		return err
	}
	m.Paint(key, tilemap.TileID{Type: *typ, Variant: *variant}, *brush, *flipX, *flipY)
	if !*noAuto {
		m.Autotile()
	}
	if err := m.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "painted %s at %s\n", *typ, key)
	return nil
}

func runErase(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("erase", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, key, err := fileAndCell(fs, "erase")
	if err != nil {
		return err
	}
	m, err := loadMap(path)
	if err != nil {
		return err
	}
	if !m.Erase(key) {
		fmt.Fprintf(out, "nothing at %s\n", key)
		return nil
	}
	m.Autotile()
	if err := m.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "erased %s\n", key)
	return nil
}

func fileAndCell(fs *flag.FlagSet, cmd string) (string, tilemap.GridKey, error) {
	if fs.NArg() != 3 {
		return "", tilemap.GridKey{}, fmt.Errorf("usage: mapedit %s FILE X Y", cmd)
	}
	x, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return "", tilemap.GridKey{}, fmt.Errorf("bad x %q: %w", fs.Arg(1), err)
	}
	y, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return "", tilemap.GridKey{}, fmt.Errorf("bad y %q: %w", fs.Arg(2), err)
	}
	return fs.Arg(0), tilemap.GridKey{X: x, Y: y}, nil
}
