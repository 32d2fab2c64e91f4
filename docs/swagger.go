// Package docs Search Enrichment Service API.
//
// Сервис обогащения поисков авиабилетов. Принимает JSON документ поиска,
// вычисляет производные поля (расстояния, страны, цены в EUR, тип поездки,
// пассажиров) и возвращает исходный документ с наложенными полями.
//
// Основные возможности:
// - Синхронное обогащение документа поиска
// - Выдача сохраненных обогащенных поисков по search_id
// - Справочники локаций и курсов валют
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
