/*
 * @Description: envelope 标识符分配（YYNNNN，按年复位）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package envelope

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
)

// envelopeIDPattern envelope 标识符的合法形态：两位年份 + 四位序号
var envelopeIDPattern = regexp.MustCompile(`^\d{6}$`)

// FormatEnvelopeID 把年份和序号拼成 YYNNNN。
func FormatEnvelopeID(year int, counter int) string {
	return fmt.Sprintf("%02d%04d", year%100, counter)
}

// ParseEnvelopeID 把 YYNNNN 拆回两位年份和序号。
func ParseEnvelopeID(id string) (year int, counter int, err error) {
	if !envelopeIDPattern.MatchString(id) {
		return 0, 0, fmt.Errorf("非法的 envelope 标识符: %q", id)
	}
	year, _ = strconv.Atoi(id[:2])
	counter, _ = strconv.Atoi(id[2:])
	return year, counter, nil
}

// NextEnvelopeID 基于上一个标识符分配下一个。
// prev 为空或年份跨入新年时序号从 seed 起步；同年内序号加一；
// 序号超过 9999 返回 ErrSequenceExhausted，绝不回绕。
func NextEnvelopeID(prev string, now time.Time, seed int) (string, error) {
	if seed < 1 {
		seed = 1
	}
	currentYear := now.Year() % 100

	if prev == "" {
		return FormatEnvelopeID(currentYear, seed), nil
	}

	prevYear, prevCounter, err := ParseEnvelopeID(prev)
	if err != nil {
		return "", err
	}
	if prevYear != currentYear {
		return FormatEnvelopeID(currentYear, seed), nil
	}

	next := prevCounter + 1
	if next > 9999 {
		return "", constant.ErrSequenceExhausted
	}
	return FormatEnvelopeID(currentYear, next), nil
}
