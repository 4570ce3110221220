package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dzjyyds666/cq/parse/conf"
	"github.com/dzjyyds666/cq/pkg"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type ConfParams struct {
	Find    string `json:"find"`    // 查找的key，形如 group.section.key
	Type    string `json:"type"`    // 取值类型
	Format  string `json:"format"`  // 整表输出格式 flat|yaml
	Input   string `json:"input"`   // 输入文件路径
	Output  string `json:"output"`  // 输出文件地址
	Verbose bool   `json:"verbose"` // 输出调试日志
}

var params *ConfParams

var confCmd = &cobra.Command{
	Use:   "conf",
	Short: "conf parse tools",
	Run:   confRun,
}

func init() {
	params = &ConfParams{}
	confCmd.Flags().StringVarP(&params.Find, "find", "f", "", "find key, group.section.key")
	confCmd.Flags().StringVarP(&params.Type, "type", "t", "", "decode type: string|bool|int|int64|uint64|float64")
	confCmd.Flags().StringVarP(&params.Format, "format", "F", "flat", "dump format: flat|yaml")
	confCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	confCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	confCmd.Flags().BoolVarP(&params.Verbose, "verbose", "v", false, "verbose log")
}

func confRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	level := slog.LevelWarn
	if params.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("parsing config", "path", params.Input)
	table, err := conf.ParseFile(params.Input)
	if err != nil {
		fmt.Println("parse config error:", err)
		return
	}
	logger.Debug("parsed config", "groups", len(table.GroupNames()))

	var out string
	if len(params.Find) > 0 {
		group, section, key := splitFind(params.Find)
		logger.Debug("find field", "group", group, "section", section, "key", key)
		raw, ok := table.Group(group).Section(section).Field(key)
		if !ok {
			fmt.Println("key not found:", params.Find)
			return
		}
		out, err = decodeField(raw, params.Type)
		if err != nil {
			fmt.Println("decode value error:", err)
			return
		}
	} else {
		out, err = dumpTable(table, params.Format)
		if err != nil {
			fmt.Println("dump table error:", err)
			return
		}
	}

	if len(params.Output) == 0 {
		fmt.Println(out)
		return
	}
	if err := pkg.WriteFile(params.Output, []byte(out+"\n")); err != nil {
		fmt.Println("write output error:", err)
		return
	}
	logger.Debug("wrote output", "path", params.Output)
}

// splitFind 把点分路径拆成 组/小节/键；一段表示默认组默认小节的键，
// 两段表示 组.键，三段表示 组.小节.键。
func splitFind(find string) (group, section, key string) {
	parts := strings.SplitN(find, ".", 3)
	switch len(parts) {
	case 1:
		return "", "", parts[0]
	case 2:
		return parts[0], "", parts[1]
	default:
		return parts[0], parts[1], parts[2]
	}
}

func decodeField(raw, typ string) (string, error) {
	switch typ {
	case "", "string":
		return raw, nil
	case "bool":
		v, err := conf.ParseAs[bool](raw)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "int":
		v, err := conf.ParseAs[int](raw)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "int64":
		v, err := conf.ParseAs[int64](raw)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "uint64":
		v, err := conf.ParseAs[uint64](raw)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case "float64":
		v, err := conf.ParseAs[float64](raw)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported type %q", typ)
	}
}

// dumpTable 按排序后的 组.小节.键 列出全部字段；yaml 输出嵌套结构。
func dumpTable(t *conf.Table, format string) (string, error) {
	switch format {
	case "", "flat":
		var b strings.Builder
		for _, gname := range t.GroupNames() {
			g := t.Group(gname)
			for _, sname := range g.SectionNames() {
				sec := g.Section(sname)
				for _, key := range sec.Keys() {
					v, _ := sec.Field(key)
					fmt.Fprintf(&b, "%s.%s.%s = %s\n", gname, sname, key, v)
				}
			}
		}
		return strings.TrimSuffix(b.String(), "\n"), nil
	case "yaml":
		raw, err := yaml.Marshal(t.Map())
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(raw), "\n"), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}
