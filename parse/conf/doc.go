// Package conf 实现了一个面向行的 INI 风格配置解析器：引号与转义感知的
// 扫描、组/小节两级命名、按需的类型化取值。
//
// 格式：
//
//	# 注释；// 同样是注释；单个 / 是普通数据
//	[db]             # 组 "db" 的默认小节
//	[db primary]     # 组 "db" 的小节 "primary"
//	host = "10.0.0.1"
//	retry = 3
//	label = "a\"b"   # 存储为 a"b
//
// 规则：
//   - 注释标记 # 与 // 在双引号内不生效；单个 / 不是注释标记。
//   - 节头 [name] 或 [name sub]；名字可用双引号包含空格或保留字符。
//   - 键值行 key=value，引号内的 = 不作分隔符；两侧独立去空白、可选去引号。
//   - 未出现过的组/小节读取时返回共享的空实例，不会隐式创建条目。
//   - 字段始终按字符串存储，类型化解析在取值时进行（ParseAs / FieldAs）。
//   - 解析错误带行号（conf:N: ...）；类型化失败区分 invalid-value、
//     out-of-range 与 decode。
//
// 非目标（设计如此）：
//   - 写回 / 序列化
//   - 变量插值与 include
//   - 并发或增量解析
package conf
