package model

import "testing"

func TestKindByName(t *testing.T) {
	info, ok := KindByName("footnote")
	if !ok {
		t.Fatal("footnote 种类应已注册")
	}
	if info.RecordCode != "200" || info.SubrecordCode != "00" {
		t.Errorf("footnote record code = %s %s, 期望 200 00", info.RecordCode, info.SubrecordCode)
	}

	if _, ok := KindByName("nonexistent"); ok {
		t.Error("未注册种类不应命中")
	}
}

func TestDependentKinds(t *testing.T) {
	deps := DependentKinds("footnote")
	if len(deps) != 1 || deps[0].Name != "footnote_description" {
		t.Fatalf("footnote 的从属种类 = %v, 期望仅 footnote_description", deps)
	}
	// 从属种类与父种类共享 record code
	parent, _ := KindByName("footnote")
	if deps[0].RecordCode != parent.RecordCode {
		t.Errorf("从属种类 record code = %s, 父种类 = %s", deps[0].RecordCode, parent.RecordCode)
	}

	if deps := DependentKinds("footnote_description"); deps != nil {
		t.Errorf("叶子种类不应有从属种类, got %v", deps)
	}
}

func TestAllKindsStableOrder(t *testing.T) {
	kinds := AllKinds()
	if len(kinds) == 0 {
		t.Fatal("注册表不应为空")
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1].Name >= kinds[i].Name {
			t.Fatalf("AllKinds 未按名称排序: %s >= %s", kinds[i-1].Name, kinds[i].Name)
		}
	}
}
