package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// loadPlan 按扩展名读取 JSON / YAML 计划文件并校验
func loadPlan(path string) (*model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取计划文件失败: %w", err)
	}

	var plan model.Plan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&plan); err != nil {
			return nil, fmt.Errorf("解析 YAML 计划失败: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&plan); err != nil {
			return nil, fmt.Errorf("解析 JSON 计划失败: %w", err)
		}
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}
