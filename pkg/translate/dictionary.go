// Copyright 2026 The Amisgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package translate

import "sort"

// dictionary maps Chinese phrases found in the upstream schema to English.
// Exact matches are tried first; otherwise phrases are replaced as
// substrings, longest phrase first, so that a phrase embedded in a longer
// one never clobbers it.
var dictionary = map[string]string{
	// Component types
	"指定为 page 渲染器。":  "Specifies the page renderer.",
	"指定为 form 渲染器。":  "Specifies the form renderer.",
	"指定为 crud 渲染器。":  "Specifies the CRUD renderer.",
	"指定为 table 渲染器。": "Specifies the table renderer.",

	// Page properties
	"页面标题":  "Page title",
	"页面副标题": "Page subtitle",
	"页面描述, 标题旁边会出现个小图标，放上去会显示这个属性配置的内容。": "Page description. A small icon appears next to the title, hovering over it reveals the content configured in this property.",
	"内容区域":              "Content area",
	"内容区 css 类名":        "Content area CSS class name",
	"边栏区域":              "Sidebar area",
	"边栏是否允许拖动":          "Whether the sidebar allows dragging",
	"边栏内容是否粘住，即不跟随滚动。": "Whether the sidebar content is sticky, i.e. does not scroll with the page.",
	"边栏位置":              "Sidebar position",
	"边栏最小宽度":            "Minimum sidebar width",
	"边栏最大宽度":            "Maximum sidebar width",
	"边栏区 css 类名":        "Sidebar area CSS class name",
	"自定义页面级别样式表":        "Custom page-level stylesheet",
	"移动端下的样式表":          "Stylesheet for mobile devices",
	"页面级别的初始数据":         "Page-level initial data",

	// Common properties
	"配置容器 className":                 "Configure container className",
	"配置 header 容器 className":        "Configure header container className",
	"组件唯一 id，主要用于页面设计器中定位 json 节点": "Unique component ID, mainly used to locate JSON nodes in the page designer",
	"组件唯一 id，主要用于日志采集":             "Unique component ID, mainly used for log collection",
	"组件名字，这个名字可以用来定位，用于组件通信":       "Component name, this name can be used for positioning and component communication",
	"是否禁用":     "Whether disabled",
	"是否隐藏":     "Whether hidden",
	"是否显示":     "Whether visible",
	"是否静态展示":   "Whether to display statically",
	"静态展示空值占位": "Static display empty value placeholder",
	"组件样式":     "Component style",
	"编辑器配置，运行时可以忽略":     "Editor configuration, can be ignored at runtime",
	"可以组件级别用来关闭移动端样式": "Can be used at the component level to turn off mobile styles",

	// API related
	"是否默认就拉取？": "Whether to fetch by default?",

	// Expression related
	"表达式，语法 `${xxx > 5}`。": "Expression, syntax `${xxx > 5}`.",

	// Icon related
	"iconfont 里面的类名。": "Class name in iconfont.",
	"触发规则":            "Trigger rules",
	"提示标题":            "Tooltip title",
	"显示位置":            "Display position",
	"点击其他内容时是否关闭弹框信息": "Whether to close the popup when clicking elsewhere",
	"icon的形状":         "Icon shape",

	// Data related
	"初始数据，设置得值可用于组件内部模板使用。": "Initial data, the set value can be used in component internal templates.",

	// Polling related
	"配置轮询间隔，配置后 initApi 将轮询加载。": "Configure polling interval. After configuration, initApi will load by polling.",
	"是否要静默加载，也就是说不显示进度":         "Whether to load silently, i.e. without showing progress",
	"是否显示错误信息，默认是显示的。":          "Whether to display error messages. By default, they are displayed.",

	// Pull refresh
	"下拉刷新配置": "Pull-to-refresh configuration",

	// CSS variables
	"css 变量": "CSS variables",

	// Event actions
	"事件动作配置": "Event action configuration",

	// Schema references
	"配合 definitions 一起使用，可以实现无限循环的渲染器。": "Used together with definitions, infinite loop renderers can be achieved.",
}

// phrasesByLength holds the dictionary keys sorted longest first for the
// substring-replacement fallback.
var phrasesByLength = func() []string {
	phrases := make([]string, 0, len(dictionary))
	for phrase := range dictionary {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return phrases
}()
