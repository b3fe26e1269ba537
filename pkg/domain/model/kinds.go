/*
 * @Description: 实体种类注册表（record code / 业务键 / 从属关系）
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:52:47
 */
package model

import "sort"

// KindInfo 描述一个实体种类在 TARIC 规范中的元数据。
// RecordCode 把若干种类归入同一"记录族"；SubrecordCode 决定
// 同一事务内记录的先后顺序（小号在前）。
type KindInfo struct {
	Name          string
	RecordCode    string
	SubrecordCode string

	// 共同构成业务键的字段名（sid / type_code / code 或 payload 字段）
	IdentifyingFields []string

	// 该种类是否携带系统分配的 SID（Copy 时自动递增）
	HasSID bool

	// 从属记录所回指的父种类；顶层种类为空。
	// 从属种类与父种类共享 RecordCode，Copy 父实体时会被一并克隆。
	ParentKind string
}

var kindRegistry = map[string]KindInfo{
	"footnote_type": {
		Name:              "footnote_type",
		RecordCode:        "100",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"type_code"},
	},
	"footnote": {
		Name:              "footnote",
		RecordCode:        "200",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"type_code", "code"},
	},
	"footnote_description": {
		Name:              "footnote_description",
		RecordCode:        "200",
		SubrecordCode:     "10",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
		ParentKind:        "footnote",
	},
	"certificate": {
		Name:              "certificate",
		RecordCode:        "205",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"type_code", "code"},
	},
	"certificate_description": {
		Name:              "certificate_description",
		RecordCode:        "205",
		SubrecordCode:     "10",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
		ParentKind:        "certificate",
	},
	"additional_code": {
		Name:              "additional_code",
		RecordCode:        "245",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
	},
	"additional_code_description": {
		Name:              "additional_code_description",
		RecordCode:        "245",
		SubrecordCode:     "10",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
		ParentKind:        "additional_code",
	},
	"geo_area": {
		Name:              "geo_area",
		RecordCode:        "250",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
	},
	"base_regulation": {
		Name:              "base_regulation",
		RecordCode:        "285",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"code"},
	},
	"goods_nomenclature": {
		Name:              "goods_nomenclature",
		RecordCode:        "400",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
	},
	"measure": {
		Name:              "measure",
		RecordCode:        "430",
		SubrecordCode:     "00",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
	},
	"measure_component": {
		Name:              "measure_component",
		RecordCode:        "430",
		SubrecordCode:     "05",
		IdentifyingFields: []string{"sid"},
		HasSID:            true,
		ParentKind:        "measure",
	},
}

// KindByName 按名称查找种类元数据。
func KindByName(name string) (KindInfo, bool) {
	info, ok := kindRegistry[name]
	return info, ok
}

// AllKinds 返回全部种类，按名称排序（遍历结果保持稳定）。
func AllKinds() []KindInfo {
	kinds := make([]KindInfo, 0, len(kindRegistry))
	for _, info := range kindRegistry {
		kinds = append(kinds, info)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name })
	return kinds
}

// DependentKinds 返回回指 parent 种类的全部从属种类。
func DependentKinds(parent string) []KindInfo {
	var dependents []KindInfo
	for _, info := range AllKinds() {
		if info.ParentKind == parent {
			dependents = append(dependents, info)
		}
	}
	return dependents
}
