/*
Package gconf keeps one configuration record per package in the store,
under the "_c:<package>" key. The record is written from the genesis "conf"
section and read back whenever a setting is needed.
*/
package gconf
