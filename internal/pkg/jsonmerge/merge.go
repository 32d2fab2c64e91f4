// Package jsonmerge глубоко сливает два дерева JSON, декодированных в interface{}:
// map[string]interface{}, []interface{}, string, json.Number/float64, bool, nil.
package jsonmerge

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Merge сливает overlay в base и возвращает результат.
// Если оба значения - объекты, слияние рекурсивное по ключам и base изменяется на месте;
// ключи только из base остаются без изменений. Во всех остальных случаях
// (массивы, скаляры, null, разные типы) overlay полностью заменяет base.
func Merge(base, overlay interface{}) interface{} {
	baseObj, baseIsObj := base.(map[string]interface{})
	overlayObj, overlayIsObj := overlay.(map[string]interface{})
	if !baseIsObj || !overlayIsObj {
		return overlay
	}

	for key, value := range overlayObj {
		if existing, ok := baseObj[key]; ok {
			baseObj[key] = Merge(existing, value)
		} else {
			baseObj[key] = value
		}
	}
	return baseObj
}

// Decode разбирает JSON в дерево, сохраняя числа как json.Number,
// чтобы при обратной сериализации не терялась точность
func Decode(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var tree interface{}
	if err := decoder.Decode(&tree); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, fmt.Errorf("unexpected data after top-level JSON value")
	}
	return tree, nil
}

// DeepCopy копирует дерево, чтобы слияние не затронуло исходные объекты
func DeepCopy(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		copied := make(map[string]interface{}, len(v))
		for key, item := range v {
			copied[key] = DeepCopy(item)
		}
		return copied
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, item := range v {
			copied[i] = DeepCopy(item)
		}
		return copied
	default:
		return v
	}
}
